package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/vsixget/pkg/domain/model"
	"github.com/m-mizutani/vsixget/pkg/domain/types"
)

func TestParseExtensionID(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantPublisher string
		wantName      string
		wantErr       bool
	}{
		{
			name:          "dotted identifier",
			input:         "ms-python.python",
			wantPublisher: "ms-python",
			wantName:      "python",
		},
		{
			name:          "split on first dot only",
			input:         "p.e.f",
			wantPublisher: "p",
			wantName:      "e.f",
		},
		{
			name:          "marketplace URL",
			input:         "https://marketplace.visualstudio.com/items?itemName=ms-python.python",
			wantPublisher: "ms-python",
			wantName:      "python",
		},
		{
			name:          "marketplace URL with extra params",
			input:         "https://marketplace.visualstudio.com/items?ssr=false&itemName=golang.go",
			wantPublisher: "golang",
			wantName:      "go",
		},
		{
			name:    "no dot",
			input:   "noDotHere",
			wantErr: true,
		},
		{
			name:    "empty publisher",
			input:   ".python",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   "ms-python.",
			wantErr: true,
		},
		{
			name:    "URL without itemName",
			input:   "https://marketplace.visualstudio.com/items?other=x",
			wantErr: true,
		},
		{
			name:    "URL with dotless itemName",
			input:   "https://marketplace.visualstudio.com/items?itemName=python",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := model.ParseExtensionID(tt.input)

			if tt.wantErr {
				gt.Error(t, err)
				gt.True(t, goerr.HasTag(err, types.ErrTagBadIdentifier))
				return
			}

			gt.NoError(t, err)
			gt.Equal(t, ref.Publisher, tt.wantPublisher)
			gt.Equal(t, ref.Name, tt.wantName)
		})
	}
}

func TestExtensionRef_String(t *testing.T) {
	ref := &model.ExtensionRef{Publisher: "ms-python", Name: "python"}
	gt.Equal(t, ref.String(), "ms-python.python")
}
