package handler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"spa-roster/internal/models"
	"spa-roster/pkg/wallclock"
)

// Prompter читает ответы пользователя построчно. Неверный ввод не выходит
// наружу: пользователь получает подсказку и вопрос повторяется.
// Конец ввода возвращается как io.EOF.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Line непустая строка без пробелов по краям
func (p *Prompter) Line(label string) (string, error) {
	for {
		fmt.Fprint(p.out, label)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}

		text := strings.TrimSpace(p.in.Text())
		if text != "" {
			return text, nil
		}
	}
}

func (p *Prompter) Int(label string) (int, error) {
	for {
		text, err := p.Line(label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(text)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, "Please enter a number.")
	}
}

// IntAtLeast число не меньше min
func (p *Prompter) IntAtLeast(label string, least int) (int, error) {
	for {
		n, err := p.Int(label)
		if err != nil {
			return 0, err
		}
		if n >= least {
			return n, nil
		}
		fmt.Fprintf(p.out, "Please enter a number of at least %d.\n", least)
	}
}

// Confirm принимает только Y или N
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		text, err := p.Line(label)
		if err != nil {
			return false, err
		}

		switch strings.ToUpper(text) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please enter Y or N.")
	}
}

// Date дата в формате mm/dd/yy
func (p *Prompter) Date(label string) (time.Time, error) {
	for {
		text, err := p.Line(label)
		if err != nil {
			return time.Time{}, err
		}

		date, err := wallclock.ParseDate(text)
		if err == nil {
			return date, nil
		}
		fmt.Fprintln(p.out, "Invalid date! Use mm/dd/yy, e.g. 05/01/24.")
	}
}

// Time время в 24-часовом формате hh:mm
func (p *Prompter) Time(label string) (int, int, error) {
	for {
		text, err := p.Line(label)
		if err != nil {
			return 0, 0, err
		}

		hour, minute, err := wallclock.ParseClock(text)
		if err == nil {
			return hour, minute, nil
		}
		fmt.Fprintln(p.out, "Invalid time! Use hh:mm (24-hr), e.g. 14:30.")
	}
}

// Position выбор должности по номеру пункта
func (p *Prompter) Position(label string) (models.Position, error) {
	fmt.Fprintln(p.out, "Positions:")
	for i, position := range models.Positions {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, position)
	}

	for {
		choice, err := p.Int(label)
		if err != nil {
			return "", err
		}

		position, err := models.PositionByChoice(choice)
		if err == nil {
			return position, nil
		}
		fmt.Fprintf(p.out, "Please choose 1 to %d.\n", len(models.Positions))
	}
}
