// Package prompt assembles the text sent to the generation provider.
package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template holds the framing placed around the club information and the
// user's question. Each field can be overridden from a YAML file.
type Template struct {
	Intro         string `yaml:"intro"`
	InfoHeader    string `yaml:"info_header"`
	InfoFooter    string `yaml:"info_footer"`
	QuestionLabel string `yaml:"question_label"`
}

func Default() Template {
	return Template{
		Intro:         "너는 대학교 동아리 i-Keeper 안내 챗봇이다.\n아래 제공된 정보 안에서만 답변해라.",
		InfoHeader:    "===== 동아리 정보 =====",
		InfoFooter:    "=======================",
		QuestionLabel: "사용자 질문:",
	}
}

// LoadFile returns Default with the keys present in the YAML file at path
// applied on top.
func LoadFile(path string) (Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read prompt file: %w", err)
	}

	t := Default()
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Template{}, fmt.Errorf("parse prompt file %s: %w", path, err)
	}
	return t, nil
}

// Build embeds the reference text and the message into the framing.
func (t Template) Build(reference, message string) string {
	var sb strings.Builder
	sb.Grow(len(t.Intro) + len(t.InfoHeader) + len(t.InfoFooter) + len(t.QuestionLabel) + len(reference) + len(message) + 16)

	sb.WriteString("\n")
	sb.WriteString(t.Intro)
	sb.WriteString("\n\n")
	sb.WriteString(t.InfoHeader)
	sb.WriteString("\n")
	sb.WriteString(reference)
	sb.WriteString("\n")
	sb.WriteString(t.InfoFooter)
	sb.WriteString("\n\n")
	sb.WriteString(t.QuestionLabel)
	sb.WriteString(" ")
	sb.WriteString(message)
	sb.WriteString("\n")
	return sb.String()
}
