package cull

import (
	"reflect"
	"testing"

	"github.com/KDE/marble-sub013/geo"
	"github.com/KDE/marble-sub013/proj"
	"github.com/KDE/marble-sub013/viewport"
)

func testIndex() *Index {
	ix := New()
	ix.Insert("berlin", geo.NewBox(52.7, 52.3, 13.8, 13.0, geo.Degree))
	ix.Insert("fiji", geo.NewBox(-15, -20, -178, 176, geo.Degree))
	ix.Insert("sydney", geo.NewBox(-33.8688, -33.8688, 151.2093, 151.2093, geo.Degree))
	return ix
}

func TestQuery(t *testing.T) {
	ix := testIndex()

	tests := []struct {
		name string
		box  geo.Box
		want []string
	}{
		{"europe", geo.NewBox(60, 40, 30, -10, geo.Degree), []string{"berlin"}},
		{"east of the seam", geo.NewBox(-10, -30, 179, 177, geo.Degree), []string{"fiji"}},
		{"west of the seam", geo.NewBox(-10, -30, -170, -179, geo.Degree), []string{"fiji"}},
		{"across the seam", geo.NewBox(0, -40, -175, 175, geo.Degree), []string{"fiji"}},
		{"point feature", geo.NewBox(-30, -40, 155, 150, geo.Degree), []string{"sydney"}},
		{"whole world", geo.FullBox(), []string{"berlin", "fiji", "sydney"}},
		{"empty ocean", geo.NewBox(10, 0, -20, -40, geo.Degree), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.Query(tt.box); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Query = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestInsertDelete(t *testing.T) {
	ix := testIndex()
	if ix.Len() != 3 {
		t.Fatalf("Len = %d; want 3", ix.Len())
	}

	box, ok := ix.Box("fiji")
	if !ok || !box.CrossesDateLine() {
		t.Errorf("Box(fiji) = %v, %v; want the crossing box", box, ok)
	}

	if !ix.Delete("fiji") {
		t.Error("Delete(fiji) = false")
	}
	if ix.Delete("fiji") {
		t.Error("second Delete(fiji) = true")
	}
	if got := ix.Query(geo.FullBox()); !reflect.DeepEqual(got, []string{"berlin", "sydney"}) {
		t.Errorf("after delete Query = %v", got)
	}

	// Re-inserting an id moves the feature.
	ix.Insert("berlin", geo.NewBox(1, -1, 1, -1, geo.Degree))
	if ix.Len() != 2 {
		t.Errorf("Len = %d; want 2", ix.Len())
	}
	if got := ix.Query(geo.NewBox(60, 40, 30, -10, geo.Degree)); len(got) != 0 {
		t.Errorf("moved feature still found at the old place: %v", got)
	}
}

func TestVisible(t *testing.T) {
	ix := testIndex()
	vp := viewport.New(proj.Mercator, 800, 600)
	vp.SetRadius(5000)
	vp.CenterOn(13.4*geo.DegToRad, 52.5*geo.DegToRad)

	if got := ix.Visible(vp); !reflect.DeepEqual(got, []string{"berlin"}) {
		t.Errorf("Visible = %v; want [berlin]", got)
	}

	vp.CenterOn(179*geo.DegToRad, -17*geo.DegToRad)
	if got := ix.Visible(vp); !reflect.DeepEqual(got, []string{"fiji"}) {
		t.Errorf("Visible = %v; want [fiji]", got)
	}
}
