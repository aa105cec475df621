package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/vsixget/pkg/domain/model"
)

func TestVersionSpec(t *testing.T) {
	tests := []struct {
		name        string
		spec        model.VersionSpec
		wantLabel   string
		wantSegment string
	}{
		{
			name:        "unresolved",
			spec:        model.VersionSpec{},
			wantLabel:   "latest",
			wantSegment: "latest",
		},
		{
			name:        "explicit version pins the download path",
			spec:        model.VersionSpec{Explicit: "2023.4.1"},
			wantLabel:   "2023.4.1",
			wantSegment: "2023.4.1",
		},
		{
			name:        "resolved version labels the file only",
			spec:        model.VersionSpec{Resolved: "3.2.1"},
			wantLabel:   "3.2.1",
			wantSegment: "latest",
		},
		{
			name:        "explicit wins over resolved",
			spec:        model.VersionSpec{Explicit: "1.0.0", Resolved: "3.2.1"},
			wantLabel:   "1.0.0",
			wantSegment: "1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.spec.Label(), tt.wantLabel)
			gt.Equal(t, tt.spec.PathSegment(), tt.wantSegment)
		})
	}
}

func TestArtifactName(t *testing.T) {
	ref := &model.ExtensionRef{Publisher: "ms-python", Name: "python"}

	gt.Equal(t, model.ArtifactName(ref, "2023.4.1"), "ms-python.python-2023.4.1.vsix")
	gt.Equal(t, model.ArtifactName(ref, "latest"), "ms-python.python-latest.vsix")
}
