package solicitud

import "testing"

func TestListFilterNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListFilter
		want ListFilter
	}{
		{
			name: "empty filter gets default pagination",
			in:   ListFilter{},
			want: ListFilter{Page: 1, PageSize: DefaultPageSize},
		},
		{
			name: "short nombre is dropped",
			in:   ListFilter{NombreCandidato: "ana", Page: 1, PageSize: 100},
			want: ListFilter{Page: 1, PageSize: 100},
		},
		{
			name: "three chars with padding is still dropped",
			in:   ListFilter{NombreCandidato: "  ana  ", Page: 1, PageSize: 100},
			want: ListFilter{Page: 1, PageSize: 100},
		},
		{
			name: "four chars pass through trimmed",
			in:   ListFilter{NombreCandidato: " luis ", Page: 1, PageSize: 100},
			want: ListFilter{NombreCandidato: "luis", Page: 1, PageSize: 100},
		},
		{
			name: "page below one coerced",
			in:   ListFilter{Page: 0, PageSize: 100},
			want: ListFilter{Page: 1, PageSize: 100},
		},
		{
			name: "negative page coerced",
			in:   ListFilter{Page: -3, PageSize: 100},
			want: ListFilter{Page: 1, PageSize: 100},
		},
		{
			name: "page size clamped to max",
			in:   ListFilter{Page: 2, PageSize: 10000},
			want: ListFilter{Page: 2, PageSize: MaxPageSize},
		},
		{
			name: "other filters trimmed and kept",
			in: ListFilter{
				SolicitudID:     " sol-1 ",
				NumeroDocumento: "1037612345 ",
				CargoID:         "cargo-7",
				Estado:          "pendiente",
				EmpresaID:       "emp-2",
				Page:            3,
				PageSize:        50,
			},
			want: ListFilter{
				SolicitudID:     "sol-1",
				NumeroDocumento: "1037612345",
				CargoID:         "cargo-7",
				Estado:          "pendiente",
				EmpresaID:       "emp-2",
				Page:            3,
				PageSize:        50,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListFilterIsEmpty(t *testing.T) {
	if !(ListFilter{Page: 5, PageSize: 20}).IsEmpty() {
		t.Error("pagination-only filter should be empty")
	}
	if (ListFilter{Estado: "pendiente"}).IsEmpty() {
		t.Error("estado filter should not be empty")
	}
}
