// Command console runs the resume intake dialogue interactively in the
// terminal against an in-memory session store. On finalization it writes
// resume.pdf and resume.md to the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/OnslaughtSnail/vitae/kernel/engine"
	"github.com/OnslaughtSnail/vitae/kernel/export"
	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/render"
	"github.com/OnslaughtSnail/vitae/kernel/state"
	"github.com/OnslaughtSnail/vitae/kernel/store/inmemory"
	"github.com/OnslaughtSnail/vitae/pkg/config"
	clog "github.com/OnslaughtSnail/vitae/pkg/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "console:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.Verbose {
		clog.SetVerbose(true)
	}

	schema, err := form.Default()
	if err != nil {
		return err
	}
	if cfg.FormPath != "" {
		if schema, err = form.Load(cfg.FormPath); err != nil {
			return err
		}
	}

	sessions := inmemory.New()
	eng, err := engine.New(engine.Config{
		Store:           sessions,
		Schema:          schema,
		MaxCorrections:  cfg.MaxCorrections,
		DefaultLanguage: cfg.Language,
	})
	if err != nil {
		return err
	}
	renderer := render.NewTemplate(schema)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ctx := context.Background()
	greet(rl.Stdout(), cfg.Language)

	var sessionID string
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		res, err := eng.ProcessTurn(ctx, engine.TurnInput{
			SessionID: sessionID,
			Text:      line,
			Language:  cfg.Language,
		})
		if err != nil {
			fmt.Fprintln(rl.Stdout(), "error:", err)
			continue
		}
		sessionID = res.SessionID

		sess, err := eng.Session(ctx, sessionID)
		if err != nil {
			return err
		}
		reply, err := renderer.Render(ctx, res.Directive, sess.Data, sess.Language)
		if err != nil {
			return err
		}
		fmt.Fprintln(rl.Stdout(), reply)

		if res.Finalized {
			return writeDocuments(rl.Stdout(), sess.Data, sess.Language)
		}
	}
}

func greet(out io.Writer, lang string) {
	if lang == "ar" {
		fmt.Fprintln(out, "مرحبا! سنقوم الآن ببناء سيرتك الذاتية خطوة بخطوة. ما هو اسمك الكامل؟")
		return
	}
	fmt.Fprintln(out, "Welcome! Let's build your resume step by step. What is your full name?")
}

func writeDocuments(out io.Writer, data state.ResumeData, lang string) error {
	doc, err := export.PDF(data, lang)
	if err != nil {
		return err
	}
	if err := os.WriteFile("resume.pdf", doc, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile("resume.md", []byte(export.Markdown(data, lang)), 0o644); err != nil {
		return err
	}
	fmt.Fprintln(out, "Saved resume.pdf and resume.md")
	return nil
}
