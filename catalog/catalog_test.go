package catalog

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/wardrobe/internal/fixture"
)

func TestLoad_Hero(t *testing.T) {
	tr := fixture.New(t)
	tr.Hero()

	c, err := Load(tr.Root, "hero", "articles.txt")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got := c.Categories(); len(got) != 2 || got[0] != "body" || got[1] != "tops" {
		t.Errorf("Categories() = %v, want [body tops]", got)
	}

	body, ok := c.FindByID("1")
	if !ok {
		t.Fatal("FindByID(1) not found")
	}
	if body.Image != "body.png" || body.X != 0 || body.Y != 0 {
		t.Errorf("body = %+v, want body.png at (0,0)", body)
	}
	if want := filepath.Join(tr.Root, "hero", "data", "body.png"); body.Path != want {
		t.Errorf("body.Path = %q, want %q", body.Path, want)
	}

	shirt, ok := c.FindByID("2")
	if !ok {
		t.Fatal("FindByID(2) not found")
	}
	if shirt.X != 10 || shirt.Y != 20 {
		t.Errorf("shirt offset = (%d, %d), want (10, 20)", shirt.X, shirt.Y)
	}
}

func TestLoad_DefaultInventoryName(t *testing.T) {
	tr := fixture.New(t)
	tr.Hero()

	c, err := Load(tr.Root, "hero", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.InventoryFile != DefaultInventory || c.Len() != 2 {
		t.Errorf("InventoryFile = %q, Len() = %d, want %q, 2", c.InventoryFile, c.Len(), DefaultInventory)
	}
}

func TestLoad_MissingInventoryIsEmpty(t *testing.T) {
	tr := fixture.New(t)

	c, err := Load(tr.Root, "nobody", "articles.txt")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if !c.Empty() || len(c.Categories()) != 0 {
		t.Errorf("catalog not empty: Len() = %d, Categories() = %v", c.Len(), c.Categories())
	}
	if c.Name != "nobody" {
		t.Errorf("Name = %q, want nobody", c.Name)
	}
}

func TestLoad_MissingRoot(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"), "hero", "articles.txt")
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("Load() error = %v, want ErrRootNotFound", err)
	}
}

func TestParse_Rules(t *testing.T) {
	input := strings.Join([]string{
		`"0" "before.png" "body" "body" "0" "0" "-1"`, // preamble, ignored
		"",
		"# comment",
		"  HCDataSetFile_data  ",
		`"10" "boy_body_02.gif" "body" "body" "26" "28" "-1"`,
		`"10" "boy_body_02_brazos_arriba.gif" "body" "body" "26" "28" "0"`,
		`"11" "short.gif" "tops" "tops" "1" "2"`, // 6 fields
		`   # indented comment`,
		`"12" "hat.gif" "hats" "hats" "x" "5" "-1" "extra" "fields"`,
		`"13"   "coat.gif"  "jackets" "jackets" " 7 " "8" "-1"`,
	}, "\n")

	got, err := Parse(strings.NewReader(input), "/res/boy/data")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []Article{
		{ID: "10", Image: "boy_body_02.gif", Category: "body", Layer: "body", X: 26, Y: 28, Wearing: "-1",
			Path: filepath.Join("/res/boy/data", "boy_body_02.gif")},
		{ID: "12", Image: "hat.gif", Category: "hats", Layer: "hats", X: 0, Y: 0, Wearing: "-1",
			Path: filepath.Join("/res/boy/data", "hat.gif")},
		{ID: "13", Image: "coat.gif", Category: "jackets", Layer: "jackets", X: 7, Y: 8, Wearing: "-1",
			Path: filepath.Join("/res/boy/data", "coat.gif")},
	}
	if len(got) != len(want) {
		t.Fatalf("Parse() returned %d articles, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("article[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParse_NeverKeepsAlternatePose(t *testing.T) {
	var b strings.Builder
	b.WriteString(DataMarker + "\n")
	images := []string{"a_brazos_arriba.gif", "_brazos_arriba", "x_brazos_arriba_y.png", "keep.gif"}
	for i, img := range images {
		b.WriteString(fixture.Record{ID: string(rune('a' + i)), Image: img, Category: "c", Layer: "c"}.Line() + "\n")
	}

	got, err := Parse(strings.NewReader(b.String()), "data")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 || got[0].Image != "keep.gif" {
		t.Errorf("Parse() = %+v, want only keep.gif", got)
	}
}

func TestParse_NoMarker(t *testing.T) {
	got, err := Parse(strings.NewReader(`"1" "a.png" "body" "body" "0" "0" "-1"`+"\n"), "data")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Parse() = %+v, want nothing before the data marker", got)
	}
}

func TestParse_BOMAndInvalidBytes(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("\xef\xbb\xbf")
	buf.WriteString(DataMarker + "\n")
	buf.WriteString(`"1" "ca` + "\xff" + `mis.gif" "tops" "tops" "3" "4" "-1"` + "\r\n")

	got, err := Parse(&buf, "data")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Parse() returned %d articles, want 1", len(got))
	}
	if got[0].Image != "camis.gif" {
		t.Errorf("Image = %q, want invalid byte dropped: camis.gif", got[0].Image)
	}
	if got[0].Wearing != "-1" {
		t.Errorf("Wearing = %q, want -1 (CR trimmed)", got[0].Wearing)
	}
}

func TestParse_LineEndings(t *testing.T) {
	rec1 := `"1" "body.png" "body" "body" "0" "0" "-1"`
	rec2 := `"2" "shirt.png" "tops" "tops" "10" "20" "-1"`
	tests := []struct {
		name  string
		input string
	}{
		{"LF", DataMarker + "\n" + rec1 + "\n" + rec2 + "\n"},
		{"CRLF", DataMarker + "\r\n" + rec1 + "\r\n" + rec2 + "\r\n"},
		{"CR only", DataMarker + "\r" + rec1 + "\r" + rec2 + "\r"},
		{"mixed", DataMarker + "\r" + rec1 + "\r\n\r\n" + rec2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input), "data")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
				t.Fatalf("Parse() = %+v, want ids 1, 2", got)
			}
			if got[1].Wearing != "-1" || got[1].Y != 20 {
				t.Errorf("second record = %+v, want y 20, wearing -1", got[1])
			}
		})
	}
}

func TestParse_KeepsEncodedReplacementChar(t *testing.T) {
	input := DataMarker + "\n" + `"1" "a` + "\uFFFD" + `b.png" "tops" "tops" "0" "0" "-1"` + "\n"
	got, err := Parse(strings.NewReader(input), "data")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 || got[0].Image != "a\uFFFDb.png" {
		t.Errorf("Parse() = %+v, want image a\uFFFDb.png", got)
	}
}

func TestParse_UTF16BOM(t *testing.T) {
	text := DataMarker + "\n" + `"1" "body.png" "body" "body" "0" "0" "-1"` + "\n"
	buf := bytes.NewBuffer([]byte{0xFF, 0xFE})
	for _, r := range text {
		buf.WriteByte(byte(r))
		buf.WriteByte(0)
	}

	got, err := Parse(buf, "data")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 1 || got[0].Image != "body.png" {
		t.Errorf("Parse() = %+v, want body.png", got)
	}
}

func TestParse_SkipsOverlongLine(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(DataMarker + "\n")
	buf.WriteString(`"1" "body.png" "body" "body" "0" "0" "-1"` + "\n")
	buf.WriteString(`"9" "` + strings.Repeat("x", 2*maxLineLength) + `.png" "tops" "tops" "0" "0" "-1"` + "\n")
	buf.WriteString(`"2" "shirt.png" "tops" "tops" "10" "20" "-1"` + "\n")

	got, err := Parse(&buf, "data")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("Parse() returned %d articles, want ids 1, 2", len(got))
	}
}

func TestCatalog_CategoriesRegroupArticles(t *testing.T) {
	articles := []Article{
		{ID: "1", Category: "tops", Layer: "tops"},
		{ID: "2", Category: "body", Layer: "body"},
		{ID: "3", Category: "tops", Layer: "jackets"},
	}
	c := New("hero", "articles.txt", articles)

	if got := c.Categories(); len(got) != 2 || got[0] != "tops" || got[1] != "body" {
		t.Errorf("Categories() = %v, want [tops body]", got)
	}
	tops := c.ArticlesByCategory("tops")
	if len(tops) != 2 || tops[0].ID != "1" || tops[1].ID != "3" {
		t.Errorf("ArticlesByCategory(tops) = %+v, want ids 1, 3", tops)
	}
	if got := c.ArticlesByCategory("shoes"); len(got) != 0 {
		t.Errorf("ArticlesByCategory(shoes) = %+v, want empty", got)
	}
	if !c.HasCategory("body") || c.HasCategory("shoes") {
		t.Error("HasCategory() mismatch")
	}

	total := 0
	for _, name := range c.Categories() {
		total += len(c.ArticlesByCategory(name))
	}
	if total != c.Len() {
		t.Errorf("categories hold %d articles, catalog has %d", total, c.Len())
	}
}

func TestCatalog_FindByIDFirstMatch(t *testing.T) {
	c := New("boy", "articles.txt", []Article{
		{ID: "7", Image: "first.gif", Layer: "tops"},
		{ID: "7", Image: "second.gif", Layer: "hats"},
	})
	a, ok := c.FindByID("7")
	if !ok || a.Image != "first.gif" {
		t.Errorf("FindByID(7) = (%+v, %v), want first.gif", a, ok)
	}
	if _, ok := c.FindByID("missing"); ok {
		t.Error("FindByID(missing) found an article")
	}
}

func TestLayerZ(t *testing.T) {
	c := New("hero", "articles.txt", nil)
	tests := []struct {
		layer string
		want  int
	}{
		{"behind", 0},
		{"body", 1},
		{"hair", 2},
		{"underware", 3},
		{"tops", 4},
		{"shoes", 5},
		{"bottoms", 6},
		{"jackets", 7},
		{"hats", 8},
		{"infront", 9},
		{"unknown", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := c.LayerZ(Article{Layer: tt.layer}); got != tt.want {
			t.Errorf("LayerZ(%q) = %d, want %d", tt.layer, got, tt.want)
		}
	}
	if LayerZ("shoes") <= LayerZ("body") {
		t.Error("shoes must stack above body")
	}
}
