package timetable

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// expectedGridCount is how many timetable tables the source page
// publishes: weekday and weekend grids for each direction.
const expectedGridCount = 4

// ParseHTML walks the timetable page and extracts every <table> as a
// raw cell matrix, in document order. Both <td> and <th> cells are
// captured so header rows come through with the data.
func ParseHTML(reader io.Reader) ([][][]string, error) {
	tokenizer := html.NewTokenizer(reader)

	var grids [][][]string
	var currentGrid [][]string
	var currentRow []string
	var cellText strings.Builder

	inTable := false
	inCell := false

	for {
		tokenType := tokenizer.Next()

		if tokenType == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}

			return nil, fmt.Errorf("failed to tokenize timetable page: %w", tokenizer.Err())
		}

		token := tokenizer.Token()

		switch tokenType {
		case html.StartTagToken:
			switch token.Data {
			case "table":
				inTable = true
				currentGrid = nil
			case "tr":
				if inTable {
					currentRow = nil
				}
			case "td", "th":
				if inTable {
					inCell = true
					cellText.Reset()
				}
			}
		case html.EndTagToken:
			switch token.Data {
			case "table":
				if inTable {
					grids = append(grids, currentGrid)
					inTable = false
				}
			case "tr":
				if inTable && currentRow != nil {
					currentGrid = append(currentGrid, currentRow)
				}
			case "td", "th":
				if inCell {
					currentRow = append(currentRow, strings.TrimSpace(cellText.String()))
					inCell = false
				}
			}
		case html.TextToken:
			if inCell {
				cellText.WriteString(token.Data)
			}
		}
	}

	if len(grids) == 0 {
		return nil, fmt.Errorf("timetable page contained no tables")
	}

	return grids, nil
}
