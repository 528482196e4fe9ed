package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/courseplanner/planner/internal/bootstrap"
	"github.com/courseplanner/planner/internal/pkg/apperrors"
	"github.com/courseplanner/planner/internal/pkg/validation"
)

// Menu options
const (
	OptionLoad  = 1
	OptionList  = 2
	OptionPrint = 3
	OptionExit  = 9
)

const (
	msgWelcome    = "Welcome to the course planner."
	msgGoodbye    = "Goodbye.."
	msgFilePrompt = "Enter the course data file name: "
	msgMenuPrompt = "What would you like to do? "
	msgFindPrompt = "What course do you want to know about? "
	msgLoadFailed = "Failed to open course data file."
	msgBadOption  = "Your input is not a valid option."
	menuText      = "1. Load data structure.\n2. Print course list.\n3. Print course.\n9. Exit.\n\n"
)

// Shell runs the interactive menu against one course table.
type Shell struct {
	deps     *bootstrap.Dependencies
	in       *bufio.Reader
	out      io.Writer
	dataFile string
	logger   zerolog.Logger

	// pending holds tokens left over from the last input line.
	pending []string
}

// NewShell creates a shell reading from in and writing to out. A non-empty
// dataFile skips the startup prompt when it can be opened.
func NewShell(deps *bootstrap.Dependencies, in io.Reader, out io.Writer, dataFile string) *Shell {
	return &Shell{
		deps:     deps,
		in:       bufio.NewReader(in),
		out:      out,
		dataFile: dataFile,
		logger:   deps.Logger,
	}
}

// Run drives the session until the exit option is chosen or input ends.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, msgWelcome)

	if err := s.awaitFile(); err != nil {
		return s.exit(err)
	}
	s.logger.Debug().Str("path", s.dataFile).Msg("Data file selected")

	for {
		fmt.Fprint(s.out, menuText)
		fmt.Fprint(s.out, msgMenuPrompt)

		token, err := s.nextToken()
		if err != nil {
			return s.exit(err)
		}
		fmt.Fprintln(s.out)

		option, numeric, ok := validation.NewOptionValidation(token, OptionLoad, OptionList, OptionPrint, OptionExit).Parse()
		if !ok {
			s.rejectOption(token, numeric)
			continue
		}

		switch option {
		case OptionLoad:
			s.load(true)
		case OptionList:
			s.ensureLoaded()
			s.deps.CourseController.PrintCourseList(s.out)
			fmt.Fprintln(s.out)
		case OptionPrint:
			s.ensureLoaded()
			fmt.Fprint(s.out, msgFindPrompt)
			query, err := s.nextToken()
			if err != nil {
				return s.exit(err)
			}
			fmt.Fprintln(s.out)
			s.deps.CourseController.PrintCourse(s.out, query)
			fmt.Fprintln(s.out)
		case OptionExit:
			return s.exit(nil)
		}
	}
}

// awaitFile prompts until a data file that can be opened is named.
func (s *Shell) awaitFile() error {
	if s.dataFile != "" {
		if s.deps.FileStorage.CanOpen(s.dataFile) {
			return nil
		}
		fmt.Fprintf(s.out, "Unable to open: %s\n", s.dataFile)
	}

	for {
		fmt.Fprint(s.out, msgFilePrompt)
		path, err := s.readLine()
		if err != nil {
			return err
		}
		path = strings.TrimSpace(path)
		if path != "" && s.deps.FileStorage.CanOpen(path) {
			s.dataFile = path
			return nil
		}
		fmt.Fprintf(s.out, "Unable to open: %s\n", path)
	}
}

func (s *Shell) load(report bool) {
	res, err := s.deps.LoaderService.Load(s.dataFile)
	if err != nil {
		fmt.Fprintln(s.out, msgLoadFailed)
		return
	}
	if report {
		fmt.Fprintf(s.out, "Loaded %d courses.\n\n", res.Courses)
	}
}

// ensureLoaded loads the table once if no load has succeeded yet. A load that
// produced an empty table counts as loaded.
func (s *Shell) ensureLoaded() {
	if !s.deps.CourseRepo.Loaded() {
		s.load(false)
	}
}

// rejectOption reports bad menu input. Non-numeric input also discards the
// rest of its line.
func (s *Shell) rejectOption(token string, numeric bool) {
	err := fmt.Errorf("%w: %q", apperrors.ErrInvalidOption, token)
	s.logger.Debug().Err(err).Msg("Menu input rejected")

	if !numeric {
		s.pending = nil
		fmt.Fprintf(s.out, "%s is not a valid option\n\n", token)
		return
	}
	fmt.Fprintf(s.out, "%s\n\n", msgBadOption)
}

func (s *Shell) exit(err error) error {
	if err != nil && !apperrors.Is(err, apperrors.ErrInputClosed) {
		return err
	}
	if err != nil {
		fmt.Fprintln(s.out)
	}
	fmt.Fprintln(s.out, msgGoodbye)
	return nil
}

// readLine returns the next input line without its terminator. A final line
// without a newline is returned as-is; after that, ErrInputClosed.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", apperrors.ErrInputClosed
			}
			return strings.TrimRight(line, "\r"), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// nextToken returns the next whitespace-separated token, taking leftovers from
// the previous line first and skipping blank lines.
func (s *Shell) nextToken() (string, error) {
	for len(s.pending) == 0 {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		s.pending = strings.Fields(line)
	}
	token := s.pending[0]
	s.pending = s.pending[1:]
	return token, nil
}
