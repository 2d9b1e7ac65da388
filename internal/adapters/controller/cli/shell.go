// Package cli is the presentation shell: it collects content, colors and a
// save path from the user, runs the generator and reflects the outcome.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Sympa1/qr-code-gen/internal/adapters/config"
	"github.com/Sympa1/qr-code-gen/internal/adapters/logger"
	"github.com/Sympa1/qr-code-gen/internal/domain/common/errorz"
	"github.com/Sympa1/qr-code-gen/internal/domain/entity"
	"github.com/Sympa1/qr-code-gen/internal/domain/service"
	"github.com/Sympa1/qr-code-gen/internal/domain/utils/userdir"
)

type Shell struct {
	generator *service.GeneratorService
	log       *logger.Logger
	cfg       *config.Config
	in        *bufio.Scanner
	out       io.Writer
}

func New(generator *service.GeneratorService, log *logger.Logger, cfg *config.Config, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		generator: generator,
		log:       log,
		cfg:       cfg,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run drives the interactive loop until the user quits or input ends.
func (s *Shell) Run() error {
	for {
		if err := s.generateOnce(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		answer, err := s.prompt("Generate another? [y/N]: ")
		if err != nil || DecideOverwrite(answer) != Confirmed {
			return nil
		}
	}
}

func (s *Shell) generateOnce() error {
	content, err := s.prompt("Content: ")
	if err != nil {
		return err
	}
	fill, err := s.promptDefault("Fill color", s.cfg.FillColor)
	if err != nil {
		return err
	}
	background, err := s.promptDefault("Background color", s.cfg.BackgroundColor)
	if err != nil {
		return err
	}
	target, err := s.promptDefault("Save path", userdir.DefaultTarget(s.cfg.FileName))
	if err != nil {
		return err
	}

	if decision, err := s.confirmOverwrite(target); err != nil {
		return err
	} else if decision == Declined {
		// Not an error, the user keeps the existing file.
		fmt.Fprintln(s.out, "Aborted, existing file left untouched.")
		return nil
	}

	result, genErr := s.generator.Generate(entity.GenerateRequest{
		Content:         content,
		FillColor:       fill,
		BackgroundColor: background,
		TargetPath:      target,
	})
	if genErr != nil {
		fmt.Fprintln(s.out, userMessage(genErr))
		s.log.Warnf("generation failed: %v", genErr)
		return nil
	}

	fmt.Fprintf(s.out, "QR code saved to %s (%dx%d px)\n", result.Path, result.Dimension, result.Dimension)
	s.showPreview(result.Path)
	return nil
}

// confirmOverwrite runs the confirmation state machine: it stays NotAsked
// unless the target already exists.
func (s *Shell) confirmOverwrite(target string) (OverwriteDecision, error) {
	if _, err := os.Stat(target); err != nil {
		return NotAsked, nil
	}

	answer, err := s.prompt(fmt.Sprintf("%s already exists. Overwrite? [y/N]: ", target))
	if err != nil {
		return Declined, err
	}
	return DecideOverwrite(answer), nil
}

func (s *Shell) showPreview(path string) {
	size := uint(s.cfg.PreviewSize)
	if size == 0 {
		return
	}

	img, err := service.LoadPreview(path, size, size)
	if err != nil {
		s.log.Warnf("failed to refresh preview: %v", err)
		return
	}
	writePreview(s.out, img)
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) promptDefault(label, fallback string) (string, error) {
	answer, err := s.prompt(fmt.Sprintf("%s [%s]: ", label, fallback))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, errorz.EncodingFailed):
		return fmt.Sprintf("The content could not be encoded: %v", err)
	case errors.Is(err, errorz.SaveFailed):
		return fmt.Sprintf("The QR code could not be saved: %v", err)
	default:
		return fmt.Sprintf("Generation failed: %v", err)
	}
}
