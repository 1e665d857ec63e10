package groq

import (
	"context"
	"fmt"
)

func (c *Client) complete(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	return c.Chat(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
}

// Tutor answers a free-form learner question.
func (c *Client) Tutor(ctx context.Context, message string) (string, error) {
	return c.complete(ctx, c.prompts.Tutor, message, 0.7, 300)
}

// TutorWithContext answers a question about an uploaded attachment.
// docContext is the extracted attachment text, empty when nothing was attached.
func (c *Client) TutorWithContext(ctx context.Context, message, docContext string) (string, error) {
	if docContext == "" {
		return c.complete(ctx, c.prompts.TutorAttachment, message, 0.7, 300)
	}
	user := fmt.Sprintf("I've uploaded a document and have a question about it: %s\n\nDocument Context:\n%s\n\nUser Question: %s",
		message, docContext, message)
	return c.complete(ctx, c.prompts.TutorAttachment, user, 0.7, 300)
}

// GenerateQuiz returns the raw model output for a quiz about topic.
// The output is meant to be JSON but is not guaranteed to be.
func (c *Client) GenerateQuiz(ctx context.Context, topic string) (string, error) {
	user := fmt.Sprintf("Generate at least 5 multiple choice questions about: %s", topic)
	return c.complete(ctx, c.prompts.Quiz, user, 0.8, 1000)
}

// Summarize turns document text into short study notes.
func (c *Client) Summarize(ctx context.Context, content string) (string, error) {
	user := fmt.Sprintf("Please analyze this document and create simplified study notes:\n\n%s", content)
	return c.complete(ctx, c.prompts.Notes, user, 0.8, 500)
}
