package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
)

var inlineSeeds = []string{
	"",
	"<?php",
	"<?php [];",
	"<?php $a = ['a' => 1];",
	"<?php\n$a = [\n    'a' => 1,\n    'bbb' => 2,\n];\n",
	"<?php\n$a = [\n    'a'=>[\n        'x'=>1,\n        'yy' =>2,\n    ],\n];\n",
	"<?php\n$a = [\n    'a' => 1, 'b' => 2,\n    'cc' =>\n        3,\n];\n",
	"<?php\n$a = [\n    => 1,\n    'b' => 2,\n",
	"<?php\n$s = 'unterminated\n",
	"<?php /* open comment\n",
	"html only\n",
	"<?php\r\n$a = [\r\n\t'a' => 1,\r\n\t'bb' => 2,\r\n];\r\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata", "php")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".php" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
