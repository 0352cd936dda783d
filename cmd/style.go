package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/ledger"
)

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("J", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker", pterm.FgDarkGray.ToStyle()),
	).Render()
}

// jokerStyle colours text with the joker's display colour.
func jokerStyle(j poker.JokerType) func(a ...any) string {
	info, ok := j.Info()
	if !ok {
		return pterm.Sprint
	}
	rgb, err := rgbFromHex(info.Color)
	if err != nil {
		return pterm.Sprint
	}
	return rgb.Sprint
}

func rgbFromHex(hex string) (pterm.RGB, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return pterm.RGB{}, fmt.Errorf("invalid colour %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pterm.RGB{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return pterm.NewRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// cardLabels numbers the hand from 1 so that equal cards stay distinct.
func cardLabels(hand []poker.Card) []string {
	labels := make([]string, len(hand))
	for i, c := range hand {
		labels[i] = fmt.Sprintf("%d. %s", i+1, c.String())
	}
	return labels
}

// labelIndices maps labels chosen in a multiselect back to hand indices.
func labelIndices(labels, chosen []string) []int {
	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		pos[l] = i
	}
	var out []int
	for _, c := range chosen {
		if i, ok := pos[c]; ok {
			out = append(out, i)
		}
	}
	return out
}

func handInfo(s poker.RoundState) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var parts []string
	for i, c := range s.Hand {
		label := fmt.Sprintf("%d:%s", i+1, c.Pretty())
		if s.IsSelected(i) {
			label = pterm.BgGreen.Sprint(label)
		}
		parts = append(parts, label)
	}
	return pbox.WithTitle("|HAND|").WithTitleTopLeft().Sprint(strings.Join(parts, "  "))
}

func jokersInfo(jokers []poker.JokerType) string {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).WithTopPadding(1).WithBottomPadding(1)
	if len(jokers) == 0 {
		return pbox.WithTitle("|JOKERS|").WithTitleTopLeft().Sprint(pterm.Gray("none"))
	}
	var lines []string
	for _, j := range jokers {
		info, _ := j.Info()
		lines = append(lines, jokerStyle(j)(info.Name)+"  "+info.Effect)
	}
	return pbox.WithTitle("|JOKERS|").WithTitleTopLeft().Sprint(strings.Join(lines, "\n"))
}

func scoreInfo(s poker.RoundState) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	progress := fmt.Sprintf("%3.0f%%", s.Progress()*100)
	return pbox.WithTitle(fmt.Sprintf("|ROUND %d|", s.Number)).WithTitleTopCenter().Sprintf(
		"Score: %s / %d  %s\nLast: %d chips x %d mult\nHands: %d   Discards: %d",
		pterm.LightCyan(s.Score), s.TargetScore, progress,
		s.Chips, s.Mult,
		s.HandsLeft, s.DiscardsLeft)
}

func resultInfo(res poker.ScoreResult) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	text := fmt.Sprintf("%s\n%d chips x %d mult = %s",
		pterm.LightYellow(res.Name), res.Chips, res.Mult, pterm.LightGreen(res.Score))
	if res.Detail != "" {
		text += "\n" + pterm.Gray(res.Detail)
	}
	return pbox.WithTitle("|PLAYED|").WithTitleTopCenter().Sprint(text)
}

func printState(s poker.RoundState, additionalPanel ...pterm.Panel) {
	dashboard := []pterm.Panel{{Data: scoreInfo(s)}}
	dashboard = append(dashboard, additionalPanel...)
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: jokersInfo(s.Jokers)}},
		{{Data: handInfo(s)}},
		dashboard,
	}).Render()
}

// evalRows is the table printed by the eval command.
func evalRows(cards []poker.Card, jokers []poker.JokerType, res poker.ScoreResult) [][]string {
	played := make([]string, len(cards))
	for i, c := range cards {
		played[i] = c.String()
	}
	names := make([]string, len(jokers))
	for i, j := range jokers {
		names[i] = string(j)
	}
	if len(names) == 0 {
		names = []string{"-"}
	}
	rows := [][]string{
		{"Field", "Value"},
		{"Cards", strings.Join(played, " ")},
		{"Jokers", strings.Join(names, ", ")},
		{"Hand", res.Name},
		{"Chips", strconv.Itoa(res.Chips)},
		{"Mult", strconv.Itoa(res.Mult)},
		{"Score", strconv.Itoa(res.Score)},
	}
	if res.Detail != "" {
		rows = append(rows, []string{"Detail", res.Detail})
	}
	return rows
}

func summaryRows(sum ledger.Summary) [][]string {
	best := "-"
	if sum.BestHand != nil {
		best = fmt.Sprintf("%s (%d)", sum.BestHand.Name, sum.BestHand.Score)
	}
	return [][]string{
		{"Rounds", "Won", "Hands", "Discards", "Best hand"},
		{
			strconv.Itoa(sum.Rounds),
			strconv.Itoa(sum.RoundsWon),
			strconv.Itoa(sum.HandsPlayed),
			strconv.Itoa(sum.Discards),
			best,
		},
	}
}

func printSummary(sum ledger.Summary) {
	pterm.DefaultSection.Println("Session")
	_ = pterm.DefaultTable.WithHasHeader().WithData(summaryRows(sum)).Render()
}
