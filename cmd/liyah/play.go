package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
	"github.com/LaduClassic/liyahs-learning-jour/internal/letters"
	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
	"github.com/LaduClassic/liyahs-learning-jour/internal/quiz"
	"github.com/LaduClassic/liyahs-learning-jour/internal/robot"
	"github.com/LaduClassic/liyahs-learning-jour/internal/science"
	"github.com/LaduClassic/liyahs-learning-jour/internal/stats"
)

func newQuizCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Islamic studies quiz",
		Args:  cobra.NoArgs,
		RunE:  runQuizCmd,
	}
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	gen := newGenerator()
	return runLineQuiz(cmd, gen, model.SubjectIslamic, quiz.Shuffled(gen))
}

func newLettersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Arabic letter forms quiz",
		Args:  cobra.NoArgs,
		RunE:  runLettersCmd,
	}
	cmd.Flags().StringVar(&lettersMode, "mode", string(letters.FormToName), "form-to-name (name the letter) or name-to-form (pick its form)")
	cmd.Flags().IntVar(&lettersCount, "count", defaultQuizCount, "questions per round")
	return cmd
}

func runLettersCmd(cmd *cobra.Command, _ []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	mode, err := letters.ParseMode(lettersMode)
	if err != nil {
		return fmt.Errorf("--mode: %w", err)
	}
	if lettersCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", lettersCount)
	}
	gen := newGenerator()
	return runLineQuiz(cmd, gen, model.SubjectArabic, letters.Questions(gen, mode, lettersCount))
}

func newPlanetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planets",
		Short: "Solar system facts quiz",
		Args:  cobra.NoArgs,
		RunE:  runPlanetsCmd,
	}
	cmd.Flags().IntVar(&planetsCount, "count", len(science.Planets()), "questions per round")
	return cmd
}

func runPlanetsCmd(cmd *cobra.Command, _ []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	if planetsCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", planetsCount)
	}
	gen := newGenerator()
	return runLineQuiz(cmd, gen, model.SubjectScience, science.Questions(gen, planetsCount))
}

// runLineQuiz asks questions one per line and records the finished round
// under subject. A round cut short by end of input is not recorded.
func runLineQuiz(cmd *cobra.Command, gen *generator.Generator, subject model.Subject, questions []quiz.Question) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	in := bufio.NewReader(cmd.InOrStdin())
	out := &lineWriter{w: cmd.OutOrStdout()}

	var startedAt time.Time
	answers := make(map[string]string, len(questions))
	for i, q := range questions {
		out.printf("\nQuestion %d of %d  [%s]\n%s\n", i+1, len(questions), q.Category, q.Prompt)
		switch q.Kind {
		case quiz.MultipleChoice:
			for n, opt := range q.Options {
				out.printf("  %d) %s\n", n+1, opt)
			}
		case quiz.TrueFalse:
			out.println("  true / false")
		}
		out.print("> ")
		answer, err := readLine(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				out.println("\nQuiz stopped.")
				return out.err
			}
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if startedAt.IsZero() {
			startedAt = time.Now()
		}
		answers[q.ID] = answer
		if q.Correct(answer) {
			out.println(model.Encouragement(gen.Rand(), true))
		} else {
			out.printf("%s The answer is %s.\n", model.Encouragement(gen.Rand(), false), q.Answer)
		}
	}

	score := quiz.Score(questions, answers)
	total := len(questions)
	out.printf("\n%s You got %d / %d.\n", stats.Feedback(score, total), score, total)
	if quiz.Passed(score, total) {
		out.println("You passed the quiz!")
	}

	started, ended := sessionTimes(startedAt)
	session := model.SessionResult{
		ID:        gen.NewID(),
		Subject:   subject,
		Score:     score,
		Total:     total,
		Accuracy:  stats.Accuracy(score, total),
		StartedAt: started,
		EndedAt:   ended,
	}
	if _, err := stats.RecordSession(context.Background(), st, session); err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}
	return out.err
}

func newRobotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "robot",
		Short: "Guide the robot to the goal with U/D/L/R commands",
		Args:  cobra.NoArgs,
		RunE:  runRobotCmd,
	}
	cmd.Flags().IntVar(&robotLevel, "level", 1, "level to start from")
	cmd.Flags().StringVar(&robotCmds, "cmds", "", "run one program (e.g. RRD) on --level and exit")
	return cmd
}

func runRobotCmd(cmd *cobra.Command, _ []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}
	level, err := robot.LevelByID(robotLevel)
	if err != nil {
		return err
	}
	out := &lineWriter{w: cmd.OutOrStdout()}

	if cmd.Flags().Changed("cmds") {
		res, err := runProgram(level, robotCmds)
		if err != nil {
			return err
		}
		printRobotResult(out, level, res)
		if out.err != nil {
			return out.err
		}
		if !res.Reached {
			return fmt.Errorf("the robot did not reach the goal")
		}
		return nil
	}

	in := bufio.NewReader(cmd.InOrStdin())
	levels := robot.Levels()
	for i := level.ID - 1; i < len(levels); {
		if out.err != nil {
			return out.err
		}
		current := levels[i]
		out.printf("\nLevel %d  (max %d moves)\n%s", current.ID, current.MaxMoves, robot.Render(current, current.Start))
		out.print("Commands (U D L R): ")
		line, err := readLine(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out.err
			}
			return fmt.Errorf("failed to read commands: %w", err)
		}
		res, err := runProgram(current, line)
		if err != nil {
			out.printf("%v\n", err)
			continue
		}
		printRobotResult(out, current, res)
		if res.Reached {
			i++
		}
	}
	out.println("You completed all levels!")
	return out.err
}

func runProgram(level robot.Level, program string) (robot.Result, error) {
	cmds, err := robot.ParseCommands(program)
	if err != nil {
		return robot.Result{}, err
	}
	return robot.Run(level, cmds)
}

func printRobotResult(out *lineWriter, level robot.Level, res robot.Result) {
	out.print(robot.Render(level, res.Final))
	if res.Bumps > 0 {
		out.printf("Bumped into an obstacle %d time(s).\n", res.Bumps)
	}
	if res.Reached {
		out.println("Amazing! The robot reached the goal!")
		return
	}
	out.println("Try again! The robot didn't reach the goal.")
}

// readLine returns the next line without its newline. A final line without
// a newline is returned before io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// lineWriter keeps the first write error so a prompt loop can check once.
type lineWriter struct {
	w   io.Writer
	err error
}

func (p *lineWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *lineWriter) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}

func (p *lineWriter) print(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprint(p.w, args...)
}
