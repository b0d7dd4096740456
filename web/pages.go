// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/danielhkuo/quickly-poll/models"
)

const dateLayout = "Jan 2, 2006 15:04 MST"

func esc(s string) string {
	return templ.EscapeString(s)
}

func writePage(w io.Writer, title string, body func(b *strings.Builder)) error {
	var b strings.Builder
	b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`)
	b.WriteString(esc(title))
	b.WriteString(` · Quickly Poll</title>
  </head>
  <body>
    <main class="shell">
`)
	body(&b)
	b.WriteString(`    </main>
  </body>
</html>
`)
	_, err := io.WriteString(w, b.String())
	return err
}

// Index lists the questions currently open for voting
func Index(questions []models.Question) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writePage(w, "Latest questions", func(b *strings.Builder) {
			b.WriteString("      <h1>Latest questions</h1>\n")
			if len(questions) == 0 {
				b.WriteString("      <p class=\"empty\">No polls are available.</p>\n")
				return
			}
			b.WriteString("      <ul class=\"questions\">\n")
			for _, q := range questions {
				fmt.Fprintf(b, "        <li><a href=\"/q/%s\">%s</a>", esc(q.ID), esc(q.QuestionText))
				if q.ShortDescription != "" {
					fmt.Fprintf(b, " <span class=\"short\">%s</span>", esc(q.ShortDescription))
				}
				b.WriteString("</li>\n")
			}
			b.WriteString("      </ul>\n")
		})
	})
}

// Detail shows a question with its choices and current counts
func Detail(detail models.QuestionDetail) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		q := detail.Question
		return writePage(w, q.QuestionText, func(b *strings.Builder) {
			fmt.Fprintf(b, "      <h1>%s</h1>\n", esc(q.QuestionText))
			if q.FullDescription != "" {
				fmt.Fprintf(b, "      <p class=\"description\">%s</p>\n", esc(q.FullDescription))
			}
			fmt.Fprintf(b, "      <p class=\"dates\">Published %s · Expires %s</p>\n",
				esc(q.PubDate.Format(dateLayout)), esc(q.ExpiresAt.Format(dateLayout)))
			if detail.Expired {
				b.WriteString("      <p class=\"expired\">This question has expired.</p>\n")
			}
			b.WriteString("      <ul class=\"choices\">\n")
			for _, c := range detail.Choices {
				fmt.Fprintf(b, "        <li data-choice-id=\"%s\">%s <span class=\"votes\">%d vote%s</span></li>\n",
					esc(c.ID), esc(c.ChoiceText), c.Votes, plural(c.Votes))
			}
			b.WriteString("      </ul>\n")
			fmt.Fprintf(b, "      <a href=\"/q/%s/results\">View results</a>\n", esc(q.ID))
		})
	})
}

// Results shows each choice's share of the total as a bar
func Results(q models.Question, results models.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writePage(w, "Results: "+q.QuestionText, func(b *strings.Builder) {
			fmt.Fprintf(b, "      <h1>%s</h1>\n", esc(q.QuestionText))
			fmt.Fprintf(b, "      <p class=\"total\">%d vote%s</p>\n", results.TotalVotes, plural(results.TotalVotes))
			b.WriteString("      <ul class=\"results\">\n")
			for _, r := range results.Choices {
				pct := fmt.Sprintf("%.1f%%", r.Percentage)
				fmt.Fprintf(b, "        <li><span class=\"label\">%s</span> <span class=\"bar\" style=\"width: %s\"></span> <span class=\"pct\">%s</span> <span class=\"votes\">(%d)</span></li>\n",
					esc(r.ChoiceText), pct, pct, r.Votes)
			}
			b.WriteString("      </ul>\n")
			fmt.Fprintf(b, "      <a href=\"/q/%s\">Back to question</a>\n", esc(q.ID))
		})
	})
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
