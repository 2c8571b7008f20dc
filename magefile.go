//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "mdtranslate"

// Default target to run when none is specified
var Default = Build

// Build compiles the mdtranslate binary into ./bin
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", filepath.Join("bin", binary), "./cmd/"+binary)
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Integration runs the tests that call the real translation APIs. They are
// skipped unless GOOGLE_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY is set.
func Integration() error {
	return sh.RunV("go", "test", "-run", "Integration", "-v", "./internal/translation/...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and copies the binary to $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/"+binary)
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}
