package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/kinloom/motion"
	"github.com/lixenwraith/kinloom/notation"
	"github.com/lixenwraith/kinloom/sequence"
	"github.com/lixenwraith/kinloom/vmath"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <document>",
	Short: "Print the resolved motion of a document",
	Long: `Inspect parses a sequence document and prints each step's tokens
alongside the angles they resolve to, plus any resolution warnings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "inspect needs exactly one document path")
			os.Exit(1)
		}
		if err := inspect(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to inspect: %v\n", err)
			os.Exit(1)
		}
	},
}

func inspect(path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	seq, err := sequence.Parse(doc)
	if err != nil {
		return err
	}

	fmt.Printf("%q by %s\n", seq.Word, seq.Author)
	fmt.Printf("grid %s, %d beats\n", seq.Grid, seq.TotalBeats())

	seen := make(map[motion.Warning]struct{})
	var order []motion.Warning
	record := func(warns []motion.Warning) {
		for _, w := range warns {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			order = append(order, w)
		}
	}

	for _, hand := range []notation.Hand{notation.HandBlue, notation.HandRed} {
		fmt.Printf("\n%s:\n", hand)

		pose, warns := motion.SampleAt(seq, hand, 0)
		record(warns)
		fmt.Printf("  start pose       %-18s center %6.1f°            staff %6.1f°\n",
			tokenSpan(seq.Start.Attributes(hand)),
			vmath.Degrees(pose.CenterPathAngle), vmath.Degrees(pose.StaffRotationAngle))

		for i, step := range seq.Steps {
			var next *sequence.MotionAttributes
			if i+1 < len(seq.Steps) {
				a := seq.Steps[i+1].Attributes(hand)
				next = &a
			}

			attrs := step.Attributes(hand)
			r, warns := motion.Resolve(attrs, next)
			record(warns)

			fmt.Printf("  beat %-2d [%s] %-7s %-18s center %6.1f° → %6.1f°  staff %6.1f° → %6.1f°%s\n",
				step.Beat, letterLabel(step.Letter), r.Motion, tokenSpan(attrs),
				vmath.Degrees(r.StartCenter), vmath.Degrees(r.EndCenter),
				vmath.Degrees(r.StartStaff), vmath.Degrees(r.TargetStaff),
				extraLabel(attrs))
		}
	}

	if len(order) > 0 {
		fmt.Printf("\nwarnings:\n")
		for _, w := range order {
			fmt.Printf("  %s\n", w)
		}
	}

	return nil
}

func tokenSpan(a sequence.MotionAttributes) string {
	if a.EndLoc == "" || a.EndLoc == a.StartLoc {
		return fmt.Sprintf("%s/%s", a.StartLoc, a.StartOri)
	}
	return fmt.Sprintf("%s/%s → %s", a.StartLoc, a.StartOri, a.EndLoc)
}

func letterLabel(letter string) string {
	if letter == "" {
		return "·"
	}
	return letter
}

// extraLabel renders rotation direction and turn count when the step
// carries them
func extraLabel(a sequence.MotionAttributes) string {
	out := ""
	if a.RotDir != "" {
		out += "  " + a.RotDir
	}
	if a.Turns.Continuous {
		out += "  turns=cont"
	} else if a.Turns.Count != 0 {
		out += fmt.Sprintf("  turns=%d", a.Turns.Count)
	}
	return out
}
