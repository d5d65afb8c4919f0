package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Build(t *testing.T) {
	got := Default().Build("회비: 2만원", "회비 얼마야?")

	want := "\n너는 대학교 동아리 i-Keeper 안내 챗봇이다.\n아래 제공된 정보 안에서만 답변해라.\n\n" +
		"===== 동아리 정보 =====\n회비: 2만원\n=======================\n\n" +
		"사용자 질문: 회비 얼마야?\n"
	assert.Equal(t, want, got)
}

func TestLoadFile_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"intro: \"You are the i-Keeper guide bot.\\nAnswer only from the info below.\"\n"+
			"question_label: \"Question:\"\n",
	), 0o600))

	tmpl, err := LoadFile(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "You are the i-Keeper guide bot.\nAnswer only from the info below.", tmpl.Intro)
	assert.Equal(t, "Question:", tmpl.QuestionLabel)
	assert.Equal(t, def.InfoHeader, tmpl.InfoHeader)
	assert.Equal(t, def.InfoFooter, tmpl.InfoFooter)

	out := tmpl.Build("INFO", "hi")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "Question: hi\n")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("intro: [unterminated"), 0o600))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
