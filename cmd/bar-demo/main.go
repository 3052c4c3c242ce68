package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/clarktrimble/sabot"

	"filterbar"
	nt "filterbar/entity"
	"filterbar/parse"
	"filterbar/suggest"
	"filterbar/util"
)

const (
	cfgFile = "filterbar.yml"
	logFile = "filterbar.log"
)

var sampleCfg = []byte(`properties:
  - key: status
    label: Status
    operators: ["=", "!="]
    default_operator: "="
  - key: source_ip
    label: Source IP
    operators: ["=", "!="]
    default_operator: "="
    validation: ip
  - key: port
    label: Port
    operators: ["=", "!=", ">", "<"]
    default_operator: "="
    validation: port
  - key: message
    label: Message
    operators: [":", "!:", "^"]
    default_operator: ":"
options:
  - property: status
    value: active
  - property: status
    value: inactive
  - property: port
    value: "443"
    label: https
  - property: port
    value: "80"
    label: http
free_text:
  operators: [":", "!:"]
  default_operator: ":"
`)

var (
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	chipStyle     = lipgloss.NewStyle().Background(lipgloss.Color("235")).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type model struct {
	bar *filterbar.Bar

	input    string
	result   parse.Result
	groups   []suggest.Group
	flat     []suggest.Suggestion
	selected int
	errText  string

	query nt.Query

	width  int
	height int

	ctx context.Context
}

func newModel(ctx context.Context, bar *filterbar.Bar) model {

	mdl := model{
		bar:      bar,
		selected: -1,
		query:    bar.Query(),
		ctx:      ctx,
	}
	mdl.refresh()
	return mdl
}

func (mdl model) Init() tea.Cmd {
	return nil
}

func (mdl model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		mdl.width = msg.Width
		mdl.height = msg.Height

	case tea.KeyPressMsg:
		return mdl.handleKey(msg), nil
	}

	return mdl, nil
}

func (mdl model) handleKey(msg tea.KeyPressMsg) model {

	switch msg.String() {

	case "ctrl+c", "esc":
		// handled in main via tea.Quit wrapper below
		return mdl

	case "up":
		if len(mdl.flat) > 0 {
			mdl.selected--
			if mdl.selected < -1 {
				mdl.selected = len(mdl.flat) - 1
			}
		}

	case "down":
		if len(mdl.flat) > 0 {
			mdl.selected++
			if mdl.selected >= len(mdl.flat) {
				mdl.selected = -1
			}
		}

	case "enter":
		mdl = mdl.commit()

	case "backspace":
		if mdl.input == "" && len(mdl.query.Tokens) > 0 {
			mdl.query, _ = mdl.bar.RemoveToken(mdl.ctx, len(mdl.query.Tokens)-1)
		} else if mdl.input != "" {
			mdl.input = mdl.input[:len(mdl.input)-1]
		}
		mdl.refresh()

	case "ctrl+o":
		op := nt.And
		if mdl.query.Operation == nt.And {
			op = nt.Or
		}
		mdl.query, _ = mdl.bar.SetOperation(mdl.ctx, op)

	case "space":
		mdl.input += " "
		mdl.refresh()

	default:
		if len(msg.String()) == 1 {
			mdl.input += msg.String()
			mdl.refresh()
		}
	}

	return mdl
}

// commit materializes the selected suggestion or the typed input.
func (mdl model) commit() model {

	text := mdl.input
	if mdl.selected >= 0 && mdl.selected < len(mdl.flat) {
		sug := mdl.flat[mdl.selected]
		if sug.KeepOpen {
			// selection needs more typing, put it in the input
			mdl.input = sug.Value + " "
			mdl.refresh()
			return mdl
		}
		text = sug.Value
	}

	res := mdl.bar.Parse(text)
	switch res.Step {

	case parse.StepProperty:
		tkn := nt.Token{PropertyKey: res.Property.Key, Operator: res.Operator, Value: res.Value}
		verdict := mdl.bar.Validate(tkn)
		if !verdict.Valid {
			mdl.errText = verdict.Message
			return mdl
		}
		if verdict.Normalized != "" {
			tkn.Value = verdict.Normalized
		}
		mdl.query, _ = mdl.bar.AddToken(mdl.ctx, tkn)

	case parse.StepFreeText:
		if res.Value == "" {
			return mdl
		}
		op := res.Operator
		if !res.HasOperator {
			op = nt.Contains
		}
		mdl.query, _ = mdl.bar.AddToken(mdl.ctx, nt.Token{Operator: op, Value: res.Value})

	default:
		return mdl // operator step, keep typing
	}

	mdl.input = ""
	mdl.refresh()
	return mdl
}

// refresh reclassifies the input and rebuilds suggestions.
func (mdl *model) refresh() {

	mdl.errText = ""
	mdl.selected = -1
	mdl.result = mdl.bar.Parse(mdl.input)
	mdl.groups = mdl.bar.Suggest(mdl.input)

	mdl.flat = nil
	for _, grp := range mdl.groups {
		mdl.flat = append(mdl.flat, grp.Options...)
	}
}

func (mdl model) View() tea.View {

	var content strings.Builder

	// chips for tokens already in the query
	if len(mdl.query.Tokens) > 0 {
		chips := make([]string, 0, len(mdl.query.Tokens))
		for _, tkn := range mdl.query.Tokens {
			label := tkn.PropertyKey
			if label == "" {
				label = "free"
			}
			chips = append(chips, chipStyle.Render(fmt.Sprintf("%s %s %s", label, tkn.Operator, tkn.Value)))
		}
		joiner := mutedStyle.Render(" " + string(mdl.query.Operation) + " ")
		content.WriteString(strings.Join(chips, joiner))
		content.WriteString("\n")
	}

	content.WriteString(fmt.Sprintf("> %s█\n", mdl.input))
	content.WriteString(mutedStyle.Render(fmt.Sprintf("stage: %s", mdl.result.Step)))
	content.WriteString("\n")

	if mdl.errText != "" {
		content.WriteString(errorStyle.Render(mdl.errText))
		content.WriteString("\n")
	}

	idx := 0
	for _, grp := range mdl.groups {
		if len(grp.Options) == 0 {
			continue
		}
		content.WriteString(mutedStyle.Render(grp.Label))
		content.WriteString("\n")
		for _, sug := range grp.Options {
			line := "  " + sug.Label
			if sug.Description != "" {
				line += mutedStyle.Render("  " + sug.Description)
			}
			if idx == mdl.selected {
				line = selectedStyle.Render(line)
			}
			content.WriteString(line)
			content.WriteString("\n")
			idx++
		}
	}

	content.WriteString("\n")
	content.WriteString(mutedStyle.Render("↑↓: pick  Enter: add  Backspace: edit/remove  Ctrl+o: and/or  Esc: quit"))

	return tea.NewView(content.String())
}

// quitter wraps the model so quit keys work from anywhere.
type quitter struct {
	model
}

func (qtr quitter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return qtr, tea.Quit
		}
	}

	mdl, cmd := qtr.model.Update(msg)
	qtr.model = mdl.(model)
	return qtr, cmd
}

func main() {

	err := util.SampleConfig(sampleCfg, cfgFile, 0644)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cfg := &filterbar.Config{}
	err = util.LoadConfig(cfg, cfgFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	file := util.OpenLog(logFile, 0644)
	defer util.CloseLog(file)
	lgr := &sabot.Sabot{Writer: file}

	bar, err := cfg.New(lgr)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	prg := tea.NewProgram(quitter{newModel(ctx, bar)})
	if _, err := prg.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
