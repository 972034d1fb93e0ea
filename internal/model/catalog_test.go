package model

import (
	"testing"
)

func TestFrameSequence_Len(t *testing.T) {
	fs := &FrameSequence{
		Animation: "walk",
		Frames:    []string{"a/0001.png", "a/0002.png", "a/0003.png"},
	}

	if fs.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", fs.Len())
	}
}

func TestFrameSequence_Frame(t *testing.T) {
	fs := &FrameSequence{
		Animation: "walk",
		Frames:    []string{"a/0001.png", "a/0002.png"},
	}

	if fs.Frame(0) != "a/0001.png" {
		t.Errorf("Frame(0) = %s, expected a/0001.png", fs.Frame(0))
	}
	if fs.Frame(1) != "a/0002.png" {
		t.Errorf("Frame(1) = %s, expected a/0002.png", fs.Frame(1))
	}
}
