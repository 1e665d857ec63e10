package groq

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompts are the system prompts used for each feature.
type Prompts struct {
	Tutor           string `yaml:"tutor"`
	TutorAttachment string `yaml:"tutor_attachment"`
	Quiz            string `yaml:"quiz"`
	Notes           string `yaml:"notes"`
}

const tutorPersona = `You are a fun, friendly, and interactive AI tutor named MentorMe! 🎓✨

Your responses should be:
- SHORT and CONCISE (max 100-150 words)
- FUN and ENGAGING with emojis and personality
- INTERACTIVE - ask follow-up questions to keep the conversation going
- EASY to understand - use simple language
- ENCOURAGING and supportive
`

const tutorExamples = `
Examples of good responses:
'Great question! 🌟 [Brief explanation in 2-3 sentences]

Want to dive deeper? Ask me about [related topic] or try our quiz feature! 🧠'

'That's a cool topic! 🚀 [Quick explanation]

Pro tip: [One helpful tip] 💡

Ready to test your knowledge? Let's make a quiz! 🎯'

Keep it light, fun, and make the user want to learn more! 🎉`

const quizPrompt = `You are a fun quiz generator! 🎯 Create at least 5 multiple choice questions with 4 options each that are:

- ENGAGING and INTERESTING
- EASY to understand
- FUN to answer
- EDUCATIONAL but not boring

Return ONLY valid JSON in this format: {"questions": [{"question": "question text", "options": ["A", "B", "C", "D"], "correctAnswer": 0}]}
Do not include any text or explanation before or after the JSON. Do not use markdown. Only output the JSON object.`

const notesPrompt = `You are a fun and friendly study buddy! 📚✨ Your task is to create super easy-to-understand notes from uploaded documents.

Make the notes:
- SHORT and SWEET (max 300 words total)
- FUN and ENGAGING with emojis
- EASY to read with clear sections
- FOCUSED on the most important stuff
- PERFECT for quick study sessions

Structure:
🎯 **Key Points** - Main ideas (2-3 bullet points)
📖 **Important Terms** - Key definitions (2-3 terms)
💡 **Quick Tips** - How to remember this stuff
🎉 **Summary** - One sentence overview

Keep it light, fun, and make learning feel like a breeze! 🌟`

func DefaultPrompts() Prompts {
	return Prompts{
		Tutor:           tutorPersona + tutorExamples,
		TutorAttachment: tutorPersona + "\nIf the user uploads a document, analyze it and answer their question about it. Be helpful and specific about the document content.\n" + tutorExamples,
		Quiz:            quizPrompt,
		Notes:           notesPrompt,
	}
}

// LoadPrompts reads a YAML prompt file. Keys left out of the file keep
// their defaults. An empty path returns the defaults.
func LoadPrompts(path string) (Prompts, error) {
	p := DefaultPrompts()
	if path == "" {
		return p, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read prompts file: %w", err)
	}

	var override Prompts
	if err := yaml.Unmarshal(b, &override); err != nil {
		return p, fmt.Errorf("parse prompts file %s: %w", path, err)
	}

	merge(&p.Tutor, override.Tutor)
	merge(&p.TutorAttachment, override.TutorAttachment)
	merge(&p.Quiz, override.Quiz)
	merge(&p.Notes, override.Notes)
	return p, nil
}

func merge(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
