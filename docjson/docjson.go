package docjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tsawler/docquery/model"
)

// Wire structures mirroring the converter's JSON export.

type jsonDocument struct {
	Name     string              `json:"name"`
	Pages    map[string]jsonPage `json:"pages"`
	Body     jsonNode            `json:"body"`
	Groups   []jsonNode          `json:"groups"`
	Texts    []jsonNode          `json:"texts"`
	Tables   []jsonTable         `json:"tables"`
	Pictures []jsonNode          `json:"pictures"`
}

type jsonPage struct {
	PageNo int      `json:"page_no"`
	Size   jsonSize `json:"size"`
}

type jsonSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonRef struct {
	Ref string `json:"$ref"`
}

type jsonBBox struct {
	L float64 `json:"l"`
	T float64 `json:"t"`
	R float64 `json:"r"`
	B float64 `json:"b"`
}

type jsonProv struct {
	PageNo int      `json:"page_no"`
	BBox   jsonBBox `json:"bbox"`
}

type jsonNode struct {
	SelfRef  string     `json:"self_ref"`
	Name     string     `json:"name"`
	Label    string     `json:"label"`
	Prov     []jsonProv `json:"prov"`
	Children []jsonRef  `json:"children"`
	Text     string     `json:"text"`
}

type jsonTable struct {
	jsonNode
	Data *jsonTableData `json:"data"`
}

type jsonTableData struct {
	NumRows int          `json:"num_rows"`
	NumCols int          `json:"num_cols"`
	Grid    [][]jsonCell `json:"grid"`
}

type jsonCell struct {
	Text string `json:"text"`
}

// Load decodes a converted document from its JSON export.
func Load(r io.Reader) (*model.Document, error) {
	var raw jsonDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return build(&raw)
}

// LoadFile decodes a converted document from a JSON file on disk.
func LoadFile(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func build(raw *jsonDocument) (*model.Document, error) {
	doc := model.NewDocument(raw.Name)

	// The export keys pages by number; register them in page order.
	pages := make([]jsonPage, 0, len(raw.Pages))
	for _, p := range raw.Pages {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageNo < pages[j].PageNo })
	for _, p := range pages {
		doc.AddPage(p.Size.Width, p.Size.Height)
	}

	for i, n := range raw.Texts {
		if n.SelfRef == "" {
			return nil, fmt.Errorf("texts[%d]: missing self_ref", i)
		}
		doc.Add(&model.Text{
			Self:     model.ElementID(n.SelfRef),
			Prov:     provenance(n.Prov),
			Children: refs(n.Children),
			Text:     n.Text,
			Label:    n.Label,
		})
	}

	for i, t := range raw.Tables {
		if t.SelfRef == "" {
			return nil, fmt.Errorf("tables[%d]: missing self_ref", i)
		}
		table := &model.Table{
			Self:     model.ElementID(t.SelfRef),
			Prov:     provenance(t.Prov),
			Children: refs(t.Children),
		}
		if t.Data != nil {
			table.Data = model.TableData{NumRows: t.Data.NumRows, NumCols: t.Data.NumCols}
			table.Grid = gridFunc(t.Data.Grid)
		}
		doc.Add(table)
	}

	for i, n := range raw.Pictures {
		if n.SelfRef == "" {
			return nil, fmt.Errorf("pictures[%d]: missing self_ref", i)
		}
		doc.Add(&model.Picture{
			Self:     model.ElementID(n.SelfRef),
			Prov:     provenance(n.Prov),
			Children: refs(n.Children),
		})
	}

	for i, n := range raw.Groups {
		if n.SelfRef == "" {
			return nil, fmt.Errorf("groups[%d]: missing self_ref", i)
		}
		doc.Add(&model.Group{
			Self:     model.ElementID(n.SelfRef),
			Children: refs(n.Children),
			Name:     n.Name,
		})
	}

	doc.Body().Children = refs(raw.Body.Children)

	return doc, nil
}

// gridFunc wraps the export's inline cell grid as the table's on-demand
// accessor. The copy happens per call so queries can never alias each
// other's rows.
func gridFunc(cells [][]jsonCell) model.GridFunc {
	return func(ctx context.Context) ([][]string, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		grid := make([][]string, len(cells))
		for i, row := range cells {
			grid[i] = make([]string, len(row))
			for j, cell := range row {
				grid[i][j] = cell.Text
			}
		}
		return grid, nil
	}
}

func provenance(prov []jsonProv) []model.Provenance {
	if len(prov) == 0 {
		return nil
	}
	out := make([]model.Provenance, len(prov))
	for i, p := range prov {
		out[i] = model.Provenance{
			PageNo: p.PageNo,
			BBox:   model.NewBBox(p.BBox.L, p.BBox.T, p.BBox.R, p.BBox.B),
		}
	}
	return out
}

func refs(in []jsonRef) []model.Ref {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Ref, len(in))
	for i, r := range in {
		out[i] = model.Ref{Target: model.ElementID(r.Ref)}
	}
	return out
}
