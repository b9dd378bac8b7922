package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

type Value interface {
	String() string
	Set(string) error
	Get() any
}

type stringValue struct{ p *string }

func (v *stringValue) Set(s string) error   { *v.p = s; return nil }
func (v *stringValue) String() string       { return *v.p }
func (v *stringValue) Get() any             { return *v.p }
func newStringValue(p *string) *stringValue { return &stringValue{p} }

type boolValue struct{ p *bool }

func (v *boolValue) Set(s string) error {
	val, err := strconv.ParseBool(s)
	if err != nil && s != "" {
		return fmt.Errorf("invalid boolean value '%s': %w", s, err)
	}
	*v.p = val || s == ""
	return nil
}
func (v *boolValue) String() string   { return strconv.FormatBool(*v.p) }
func (v *boolValue) Get() any         { return *v.p }
func newBoolValue(p *bool) *boolValue { return &boolValue{p} }

type listValue struct{ p *[]string }

func (v *listValue) Set(s string) error   { *v.p = append(*v.p, s); return nil }
func (v *listValue) String() string       { return strings.Join(*v.p, ", ") }
func (v *listValue) Get() any             { return *v.p }
func newListValue(p *[]string) *listValue { return &listValue{p} }

type Flag struct {
	Name         string
	Shorthand    string
	Usage        string
	Value        Value
	DefValue     string
	ExpectedType string
}

type FlagGroup struct {
	Name                 string
	Description          string
	Flags                []FlagGroupEntry
	GroupType            string
	AvailableFlagsHeader string
}

// FlagGroupEntry is one -<prefix><name> / -<prefix>no-<name> switch pair.
// Default is only used for display in the help page.
type FlagGroupEntry struct {
	Name     string
	Prefix   string
	Usage    string
	Default  bool
	Enabled  *bool
	Disabled *bool
}

type FlagSet struct {
	name          string
	flags         map[string]*Flag
	shorthands    map[string]*Flag
	specialPrefix map[string]*Flag
	args          []string
	flagGroups    []FlagGroup
}

func NewFlagSet(name string) *FlagSet {
	return &FlagSet{
		name:          name,
		flags:         make(map[string]*Flag),
		shorthands:    make(map[string]*Flag),
		specialPrefix: make(map[string]*Flag),
	}
}

func (f *FlagSet) Args() []string { return f.args }

func (f *FlagSet) Lookup(name string) *Flag { return f.flags[name] }

func (f *FlagSet) String(p *string, name, shorthand, value, usage, expectedType string) {
	*p = value
	f.Var(newStringValue(p), name, shorthand, usage, value, expectedType)
}

func (f *FlagSet) Bool(p *bool, name, shorthand string, value bool, usage string) {
	*p = value
	f.Var(newBoolValue(p), name, shorthand, usage, strconv.FormatBool(value), "")
}

func (f *FlagSet) List(p *[]string, name, shorthand string, value []string, usage, expectedType string) {
	*p = value
	f.Var(newListValue(p), name, shorthand, usage, fmt.Sprintf("%v", value), expectedType)
}

// Special registers a prefix flag such as -W<name> that collects whatever
// follows the prefix when no exact flag matches.
func (f *FlagSet) Special(p *[]string, prefix, usage, expectedType string) {
	*p = []string{}
	f.Var(newListValue(p), prefix, "", usage, "", expectedType)
	f.specialPrefix[prefix] = f.flags[prefix]
}

func (f *FlagSet) AddFlagGroup(name, description, groupType, availableFlagsHeader string, entries []FlagGroupEntry) {
	for i := range entries {
		if entries[i].Enabled != nil {
			f.Bool(entries[i].Enabled, entries[i].Prefix+entries[i].Name, "", *entries[i].Enabled, entries[i].Usage)
		}
		if entries[i].Disabled != nil {
			f.Bool(entries[i].Disabled, entries[i].Prefix+"no-"+entries[i].Name, "", *entries[i].Disabled, "Disable '"+entries[i].Name+"'")
		}
	}
	f.flagGroups = append(f.flagGroups, FlagGroup{
		Name:                 name,
		Description:          description,
		Flags:                entries,
		GroupType:            groupType,
		AvailableFlagsHeader: availableFlagsHeader,
	})
}

func (f *FlagSet) Var(value Value, name, shorthand, usage, defValue, expectedType string) {
	if name == "" {
		panic("flag name cannot be empty")
	}
	if _, ok := f.flags[name]; ok {
		panic(fmt.Sprintf("flag redefined: %s", name))
	}
	flag := &Flag{Name: name, Shorthand: shorthand, Usage: usage, Value: value, DefValue: defValue, ExpectedType: expectedType}
	f.flags[name] = flag
	if shorthand != "" {
		if _, ok := f.shorthands[shorthand]; ok {
			panic(fmt.Sprintf("shorthand flag redefined: %s", shorthand))
		}
		f.shorthands[shorthand] = flag
	}
}

// Parse consumes flags and leaves the remaining positional arguments in Args.
// Numerals never start with '-', so a lone "-" is kept as an argument.
func (f *FlagSet) Parse(arguments []string) error {
	f.args = []string{}
	for i := 0; i < len(arguments); i++ {
		arg := arguments[i]
		if len(arg) < 2 || arg[0] != '-' {
			f.args = append(f.args, arg)
			continue
		}
		if arg == "--" {
			f.args = append(f.args, arguments[i+1:]...)
			break
		}
		var err error
		if strings.HasPrefix(arg, "--") {
			err = f.parseLongFlag(arg, arguments, &i)
		} else {
			err = f.parseSingleDash(arg, arguments, &i)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *FlagSet) setFlag(flag *Flag, display string, inline *string, arguments []string, i *int) error {
	if inline != nil {
		return flag.Value.Set(*inline)
	}
	if _, isBool := flag.Value.(*boolValue); isBool {
		return flag.Value.Set("")
	}
	if *i+1 >= len(arguments) {
		return fmt.Errorf("flag needs an argument: %s", display)
	}
	*i++
	return flag.Value.Set(arguments[*i])
}

func splitInline(s string) (string, *string) {
	name, value, found := strings.Cut(s, "=")
	if !found {
		return name, nil
	}
	return name, &value
}

func (f *FlagSet) parseLongFlag(arg string, arguments []string, i *int) error {
	name, inline := splitInline(arg[2:])
	if name == "" {
		return fmt.Errorf("empty flag name")
	}
	flag, ok := f.flags[name]
	if !ok {
		return fmt.Errorf("unknown flag: --%s", name)
	}
	return f.setFlag(flag, "--"+name, inline, arguments, i)
}

func (f *FlagSet) parseSingleDash(arg string, arguments []string, i *int) error {
	name, inline := splitInline(arg[1:])
	if flag, ok := f.flags[name]; ok {
		return f.setFlag(flag, "-"+name, inline, arguments, i)
	}

	for prefix, flag := range f.specialPrefix {
		if strings.HasPrefix(arg, "-"+prefix) && len(arg) > len(prefix)+1 {
			return flag.Value.Set(arg[len(prefix)+1:])
		}
	}

	shorthand := arg[1:2]
	flag, ok := f.shorthands[shorthand]
	if !ok {
		return fmt.Errorf("unknown shorthand flag: -%s", shorthand)
	}
	if _, isBool := flag.Value.(*boolValue); isBool {
		return flag.Value.Set("")
	}
	if value := strings.TrimPrefix(arg[2:], "="); value != "" {
		return flag.Value.Set(value)
	}
	return f.setFlag(flag, "-"+shorthand, nil, arguments, i)
}

type App struct {
	Name        string
	Synopsis    string
	Description string
	Authors     []string
	Repository  string
	FlagSet     *FlagSet
	Action      func(args []string) error
	Stdout      io.Writer
	Stderr      io.Writer
}

func NewApp(name string) *App {
	return &App{
		Name:    name,
		FlagSet: NewFlagSet(name),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

func (a *App) Run(arguments []string) error {
	help := false
	a.FlagSet.Bool(&help, "help", "h", false, "Display this information")

	if err := a.FlagSet.Parse(arguments); err != nil {
		fmt.Fprintln(a.Stderr, err)
		a.generateUsagePage(a.Stderr)
		return err
	}
	if help {
		a.generateHelpPage(a.Stdout)
		return nil
	}
	if a.Action != nil {
		return a.Action(a.FlagSet.Args())
	}
	return nil
}

func (a *App) generateUsagePage(w io.Writer) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Usage: %s %s\n", a.Name, a.Synopsis)
	fmt.Fprintf(&sb, "\nRun '%s --help' for all available options and flags.\n", a.Name)
	fmt.Fprint(w, sb.String())
}

func (a *App) generateHelpPage(w io.Writer) {
	var sb strings.Builder
	termWidth := getTerminalWidth()

	optionFlags := a.getOptionFlags()
	leftWidth := a.calculateLeftWidth(optionFlags)

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%sCopyright (c) %d: %s\n", indent(1), time.Now().Year(), strings.Join(a.Authors, ", ")+" and contributors")
	if a.Repository != "" {
		fmt.Fprintf(&sb, "%sFor more details refer to %s\n", indent(1), a.Repository)
	}

	if a.Synopsis != "" {
		fmt.Fprintf(&sb, "\n%sSynopsis\n", indent(1))
		synopsis := strings.ReplaceAll(a.Synopsis, "[", "<")
		synopsis = strings.ReplaceAll(synopsis, "]", ">")
		fmt.Fprintf(&sb, "%s%s %s\n", indent(2), a.Name, synopsis)
	}

	if a.Description != "" {
		fmt.Fprintf(&sb, "\n%sDescription\n", indent(1))
		for _, line := range wrapText(a.Description, termWidth-len(indent(2))) {
			fmt.Fprintf(&sb, "%s%s\n", indent(2), line)
		}
	}

	if len(optionFlags) > 0 {
		fmt.Fprintf(&sb, "\n%sOptions\n", indent(1))
		for _, flag := range optionFlags {
			rightPart := ""
			if _, isBool := flag.Value.(*boolValue); !isBool && flag.DefValue != "" && flag.DefValue != "[]" {
				rightPart = fmt.Sprintf("|%s|", flag.DefValue)
			}
			formatEntry(&sb, termWidth, leftWidth, formatFlagString(flag), flag.Usage, rightPart)
		}
	}

	groups := make([]FlagGroup, len(a.FlagSet.flagGroups))
	copy(groups, a.FlagSet.flagGroups)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	for _, group := range groups {
		formatFlagGroup(&sb, group, termWidth, leftWidth)
	}
	fmt.Fprint(w, sb.String())
}

// getOptionFlags returns the plain options, excluding prefix and group flags.
func (a *App) getOptionFlags() []*Flag {
	var optionFlags []*Flag
	for _, flag := range a.FlagSet.flags {
		if _, isSpecial := a.FlagSet.specialPrefix[flag.Name]; isSpecial {
			continue
		}
		if a.isGroupFlag(flag.Name) {
			continue
		}
		optionFlags = append(optionFlags, flag)
	}
	sort.Slice(optionFlags, func(i, j int) bool { return optionFlags[i].Name < optionFlags[j].Name })
	return optionFlags
}

func (a *App) isGroupFlag(flagName string) bool {
	for _, group := range a.FlagSet.flagGroups {
		for _, entry := range group.Flags {
			if flagName == entry.Prefix+entry.Name || flagName == entry.Prefix+"no-"+entry.Name {
				return true
			}
		}
	}
	return false
}

func (a *App) calculateLeftWidth(optionFlags []*Flag) int {
	maxWidth := 0
	checkWidth := func(s string) {
		if len(s) > maxWidth {
			maxWidth = len(s)
		}
	}
	for _, flag := range optionFlags {
		checkWidth(formatFlagString(flag))
	}
	for _, group := range a.FlagSet.flagGroups {
		if len(group.Flags) == 0 {
			continue
		}
		checkWidth(fmt.Sprintf("-%sno-<%s>", group.Flags[0].Prefix, group.GroupType))
		for _, entry := range group.Flags {
			checkWidth(entry.Name)
		}
	}
	return maxWidth
}

func formatFlagString(flag *Flag) string {
	var sb strings.Builder
	_, isBool := flag.Value.(*boolValue)
	if flag.Shorthand != "" {
		fmt.Fprintf(&sb, "-%s, ", flag.Shorthand)
	}
	fmt.Fprintf(&sb, "--%s", flag.Name)
	if !isBool && flag.ExpectedType != "" {
		fmt.Fprintf(&sb, " <%s>", flag.ExpectedType)
	}
	return sb.String()
}

func formatEntry(sb *strings.Builder, termWidth, leftWidth int, leftPart, usage, rightPart string) {
	usageWidth := termWidth - len(indent(2)) - leftWidth - 3 - len(rightPart)
	if usageWidth < 10 {
		usageWidth = 10
	}
	lines := wrapText(usage, usageWidth)
	first := ""
	if len(lines) > 0 {
		first = lines[0]
	}
	if rightPart != "" {
		fmt.Fprintf(sb, "%s%-*s %-*s  %s\n", indent(2), leftWidth, leftPart, usageWidth, first, rightPart)
	} else {
		fmt.Fprintf(sb, "%s%-*s %s\n", indent(2), leftWidth, leftPart, first)
	}
	for _, line := range lines[min(1, len(lines)):] {
		fmt.Fprintf(sb, "%s%s %s\n", indent(2), strings.Repeat(" ", leftWidth), line)
	}
}

func formatFlagGroup(sb *strings.Builder, group FlagGroup, termWidth, leftWidth int) {
	if len(group.Flags) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s%s\n", indent(1), group.Name)

	prefix := group.Flags[0].Prefix
	groupType := group.GroupType
	if groupType == "" {
		groupType = "flag"
	}
	fmt.Fprintf(sb, "%s%-*s Enable a specific %s\n", indent(2), leftWidth, fmt.Sprintf("-%s<%s>", prefix, groupType), groupType)
	fmt.Fprintf(sb, "%s%-*s Disable a specific %s\n", indent(2), leftWidth, fmt.Sprintf("-%sno-<%s>", prefix, groupType), groupType)

	if group.AvailableFlagsHeader != "" {
		fmt.Fprintf(sb, "%s%s\n", indent(1), group.AvailableFlagsHeader)
	}

	entries := make([]FlagGroupEntry, len(group.Flags))
	copy(entries, group.Flags)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	for _, entry := range entries {
		rightPart := "|-|"
		if entry.Default {
			rightPart = "|x|"
		}
		formatEntry(sb, termWidth, leftWidth, entry.Name, entry.Usage, rightPart)
	}
}

func indent(level int) string { return strings.Repeat(" ", 4*level) }

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	if width < 20 {
		return 20
	}
	return width
}

func wrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	var lines []string
	var currentLine strings.Builder
	for _, word := range words {
		if currentLine.Len() > 0 && currentLine.Len()+len(word)+1 > maxWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return lines
}
