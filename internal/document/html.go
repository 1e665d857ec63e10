package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlText keeps the title and the readable blocks of an HTML page.
func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, nav, header, footer, noscript").Remove()

	var parts []string
	if title := cleanText(doc.Find("title").First().Text()); title != "" {
		parts = append(parts, title)
	}

	var blocks []string
	doc.Find("body").Find("h1, h2, h3, h4, p, li, pre, td").Each(func(i int, s *goquery.Selection) {
		if text := cleanText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	// pages without block markup
	if len(blocks) == 0 {
		if text := cleanText(doc.Find("body").Text()); text != "" {
			blocks = append(blocks, text)
		}
	}
	parts = append(parts, blocks...)

	return strings.Join(parts, "\n\n"), nil
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
