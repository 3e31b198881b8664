package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/publisherr/publisherr/pkg/domain/model"
)

func TestBranchTag(t *testing.T) {
	tests := []struct {
		branch   string
		expected string
	}{
		{branch: "", expected: ""},
		{branch: "feature", expected: "feature"},
		{branch: "Feature123", expected: "feature123"},
		{branch: "fix:scope", expected: "fix:scope"},
		{branch: "feature/login-page", expected: "feature-login-page"},
		{branch: "dependabot/npm_and_yarn/semver-7.5.2", expected: "dependabot-npm-and-yarn-semver-7-5-2"},
		{branch: "/leading/slash/", expected: "leading-slash"},
		{branch: "--double--", expected: "double"},
		{branch: "@@@", expected: ""},
		{branch: "fix bug #12", expected: "fix-bug--12"},
		{branch: "café", expected: "caf"},
		{branch: "ÜBER/feature", expected: "ber-feature"},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			gt.V(t, model.BranchTag(tt.branch)).Equal(tt.expected)
		})
	}
}

func TestBranchTag_Properties(t *testing.T) {
	inputs := []string{
		"main",
		"-main-",
		"Release/2024.01",
		"user/JohnDoe/WIP!!",
		"a:b:c",
		"---",
		"日本語-branch",
		"tabs\tand\nnewlines",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tag := model.BranchTag(input)

			gt.V(t, strings.HasPrefix(tag, "-")).Equal(false)
			gt.V(t, strings.HasSuffix(tag, "-")).Equal(false)
			for _, r := range tag {
				valid := ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || r == ':' || r == '-'
				gt.V(t, valid).Equal(true)
			}
		})
	}
}
