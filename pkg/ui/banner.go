package ui

import (
	"fmt"
	"strings"
)

// Version can be overridden at build time via ldflags:
// go build -ldflags "-X github.com/prodsec/excompara/pkg/ui.Version=1.0.0"
var Version = "dev"

const bannerArt = `
  _____      ____
 | ____|_  _/ ___|___  _ __ ___  _ __   __ _ _ __ __ _
 |  _| \ \/ / |   / _ \| '_ ' _ \| '_ \ / _' | '__/ _' |
 | |___ >  <| |__| (_) | | | | | | |_) | (_| | | | (_| |
 |_____/_/\_\\____\___/|_| |_| |_| .__/ \__,_|_|  \__,_|
                                 |_|
`

const bannerInfo = `Compares two vulnerability report workbooks and writes an
analysis of fixed CVEs, newly added CVEs, and severity deltas.`

// Banner renders the startup banner.
func Banner() string {
	var b strings.Builder
	b.WriteString(BannerStyle.Render(bannerArt))
	b.WriteString("\n")
	b.WriteString(RuleStyle.Render(fmt.Sprintf("excompara %s", Version)))
	b.WriteString("\n\n")
	b.WriteString(bannerInfo)
	b.WriteString("\n")
	return b.String()
}

// rule is the horizontal line framing status messages.
var rule = strings.Repeat("-", 72)

// Successf prints a rule-framed success message.
func Successf(format string, args ...any) {
	fmt.Println(RuleStyle.Render(rule))
	fmt.Println(SuccessStyle.Render(fmt.Sprintf(format, args...)))
	fmt.Println(RuleStyle.Render(rule))
}

// Errorf prints a styled error message.
func Errorf(format string, args ...any) {
	fmt.Println(ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

// Statf prints a bold statistics line.
func Statf(format string, args ...any) {
	fmt.Println(StatStyle.Render(fmt.Sprintf(format, args...)))
}
