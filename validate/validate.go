// Command validate provides a small CLI that validates variant
// configuration JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Layout dimensions (8x8) and allowed piece characters
//   - Exactly one king per side
//   - Hill square notation and uniqueness
//   - Required message keys
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a variant configuration.
type Config struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Layout      []string          `json:"layout"`
	HillSquares []string          `json:"hill_squares"`
	Messages    map[string]string `json:"messages"`
}

const boardSize = 8

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validPieceChars are the layout characters a square may hold: the six
// piece letters in either case, or '.' for an empty square.
var validPieceChars = map[rune]bool{
	'p': true, 'n': true, 'b': true, 'r': true, 'q': true, 'k': true,
	'P': true, 'N': true, 'B': true, 'R': true, 'Q': true, 'K': true,
	'.': true,
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Validate layout
	if len(config.Layout) != boardSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Layout must have %d rows, got %d", boardSize, len(config.Layout)))
	}

	whiteKings := 0
	blackKings := 0
	whitePieces := 0
	blackPieces := 0

	for i, row := range config.Layout {
		if len(row) != boardSize {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d must have %d characters, got %d", i+1, boardSize, len(row)))
		}

		for j, char := range row {
			if !validPieceChars[char] {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Invalid character '%c' at position [%d,%d]", char, i+1, j+1))
				continue
			}
			switch {
			case char == '.':
			case char >= 'A' && char <= 'Z':
				whitePieces++
				if char == 'K' {
					whiteKings++
				}
			default:
				blackPieces++
				if char == 'k' {
					blackKings++
				}
			}
		}
	}

	if whiteKings != 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Must have exactly 1 white king (K), got %d", whiteKings))
	}
	if blackKings != 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Must have exactly 1 black king (k), got %d", blackKings))
	}

	// Validate hill squares
	if len(config.HillSquares) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Must have at least 1 hill square")
	}
	seen := map[string]bool{}
	for _, sq := range config.HillSquares {
		if !isSquare(sq) {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid hill square %q (expected e.g. \"d4\")", sq))
			continue
		}
		if seen[sq] {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Duplicate hill square %q", sq))
		}
		seen[sq] = true
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"white_wins",
		"black_wins",
		"king_on_hill",
		"king_captured",
		"invalid_move",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ White pieces: %d", whitePieces))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Black pieces: %d", blackPieces))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Hill squares: %s", strings.Join(config.HillSquares, ", ")))
	}

	return result
}

// isSquare reports whether s names a board square: a file letter a-h
// followed by a rank digit 1-8.
func isSquare(s string) bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}

// main scans ../configs for *.json files and validates each one, printing
// a concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
