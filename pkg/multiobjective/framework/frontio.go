package framework

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// ReadFront parses a front written one point per line, objectives separated
// by whitespace or commas. Blank lines and lines starting with '#' are skipped.
// Every point must have the same number of objectives as the first one.
func ReadFront(r io.Reader) (Front, error) {
	front := Front{}
	dim := -1
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		p := make(ObjectiveSpacePoint, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p[i] = v
		}
		if dim < 0 {
			dim = len(p)
		} else if len(p) != dim {
			return nil, fmt.Errorf("line %d: %w", line, &DimensionMismatchError{Index: len(front), Got: len(p), Want: dim})
		}
		front = append(front, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return front, nil
}

// ReadFrontFile reads a front from the file at path, see ReadFront.
func ReadFrontFile(path string) (Front, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	front, err := ReadFront(f)
	if err != nil {
		return nil, fmt.Errorf("reading front %s: %w", path, err)
	}
	return front, nil
}
