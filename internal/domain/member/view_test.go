package member

import "testing"

func TestBuildView(t *testing.T) {
	members := sampleMembers()

	view := BuildView(members, Query{
		RoleFilter: FilterAll,
		SortKey:    SortByTrophies,
		Page:       2,
		PageSize:   2,
	})

	if view.TotalCount != 5 {
		t.Errorf("Expected TotalCount=5, got %d", view.TotalCount)
	}

	if view.TotalPages != 3 {
		t.Errorf("Expected TotalPages=3, got %d", view.TotalPages)
	}

	expected := []string{"#B", "#E"}
	if !equalTags(tags(view.PageItems), expected) {
		t.Errorf("Expected page items %v, got %v", expected, tags(view.PageItems))
	}
}

func TestBuildView_CountsFilteredNotPage(t *testing.T) {
	view := BuildView(sampleMembers(), Query{TownHallFilter: "14", SortKey: SortByName, Page: 1, PageSize: 1})

	if view.TotalCount != 2 || view.TotalPages != 2 {
		t.Errorf("Expected 2 matches over 2 pages, got %d over %d", view.TotalCount, view.TotalPages)
	}

	if len(view.PageItems) != 1 || view.PageItems[0].Tag != "#A" {
		t.Errorf("Expected first page to hold #A, got %v", tags(view.PageItems))
	}
}

func TestBuildView_OutOfRangePage(t *testing.T) {
	view := BuildView(sampleMembers(), Query{SortKey: SortByTrophies, Page: 9, PageSize: 2})

	if len(view.PageItems) != 0 {
		t.Errorf("Expected empty page, got %v", tags(view.PageItems))
	}

	if view.TotalCount != 5 {
		t.Errorf("Expected TotalCount=5 even for out-of-range page, got %d", view.TotalCount)
	}
}

func TestBuildView_NoMembers(t *testing.T) {
	view := BuildView(nil, Query{Page: 1, PageSize: 10})

	if view.TotalCount != 0 || view.TotalPages != 0 || len(view.PageItems) != 0 {
		t.Errorf("Expected empty view, got %+v", view)
	}
}
