package notebook

import "fmt"

// Format version written by this package (nbformat v4.5)
const (
	FormatMajor = 4
	FormatMinor = 5
)

// Notebook is a minimal nbformat v4 document: just enough structure to
// persist code cells the way the reference serializer does
type Notebook struct {
	Cells         []Cell                 `json:"cells"`
	Metadata      map[string]interface{} `json:"metadata"`
	NBFormat      int                    `json:"nbformat"`
	NBFormatMinor int                    `json:"nbformat_minor"`
}

// Cell is a single notebook cell. Source holds the line fragments as
// stored on disk; ExecutionCount stays null for never-executed cells.
type Cell struct {
	ID             string                 `json:"id"`
	CellType       string                 `json:"cell_type"`
	Metadata       map[string]interface{} `json:"metadata"`
	ExecutionCount *int                   `json:"execution_count"`
	Outputs        []interface{}          `json:"outputs"`
	Source         []string               `json:"source"`
}

// New creates an empty notebook
func New() *Notebook {
	return &Notebook{
		Cells:         []Cell{},
		Metadata:      map[string]interface{}{},
		NBFormat:      FormatMajor,
		NBFormatMinor: FormatMinor,
	}
}

// AppendCodeCell adds a code cell holding the given source. The source is
// split into line fragments at append time, matching what the serializer
// writes to disk.
func (nb *Notebook) AppendCodeCell(source string) {
	nb.Cells = append(nb.Cells, Cell{
		ID:       fmt.Sprintf("cell-%d", len(nb.Cells)+1),
		CellType: "code",
		Metadata: map[string]interface{}{},
		Outputs:  []interface{}{},
		Source:   SplitLines(source),
	})
}
