package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStructFieldNaming_Headers(t *testing.T) {
	type StructWithFloat struct {
		Float float64 `report:"float"`
	}
	tests := []struct {
		name   string
		naming *StructFieldNaming
		strct  any
		want   []string
	}{
		{
			name:   "empty struct, nil naming",
			naming: nil,
			strct:  struct{}{},
			want:   []string{},
		},
		{
			name:   "exported and private names, nil naming",
			naming: nil,
			strct: struct {
				Int    int
				Bool   bool
				hidden string
			}{},
			want: []string{"Int", "Bool"},
		},
		{
			name:   "mixed, nil naming",
			naming: nil,
			strct: struct {
				Int int
				StructWithFloat
				Struct struct {
					Sub bool
				}
				hidden string
			}{},
			want: []string{"Int", "Float", "Struct"},
		},
		{
			name:   "exported and private names, DefaultStructFieldNaming",
			naming: &DefaultStructFieldNaming,
			strct: &struct {
				Int        int  `report:"Integer"`
				Bool       bool `report:"-"`
				hidden     string
				HelloWorld string
			}{},
			want: []string{"Integer", "Hello World"},
		},
		{
			name:   "mixed, DefaultStructFieldNaming",
			naming: &DefaultStructFieldNaming,
			strct: struct {
				hidden string `report:"-"`
				Int    int
				StructWithFloat
			}{},
			want: []string{"Int", "float"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.naming.Headers(tt.strct)
			require.Equal(t, tt.want, got, "StructFieldNaming.Headers()")
		})
	}
}

func TestNewStructTable(t *testing.T) {
	type Invoice struct {
		Client     string
		BalanceDue float64
		DueDate    time.Time
		Internal   string `report:"-"`
		Paid       *float64
	}
	due := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	paid := 100.0

	table, err := NewStructTable("Invoices", []*Invoice{
		{Client: "Acme", BalanceDue: 1500.5, DueDate: due, Internal: "x", Paid: &paid},
		nil,
	}, &DefaultStructFieldNaming)
	require.NoError(t, err)
	require.Equal(t, "Invoices", table.Title)
	require.Equal(t, []string{"Client", "Balance Due", "Due Date", "Paid"}, table.Headers)
	require.Len(t, table.Rows, 2)
	require.True(t, Text("Acme").Equal(table.Rows[0][0]))
	require.True(t, Number(1500.5).Equal(table.Rows[0][1]))
	require.True(t, Date(due).Equal(table.Rows[0][2]))
	require.True(t, Number(100).Equal(table.Rows[0][3]))
	require.Len(t, table.Rows[1], 4)
	require.True(t, table.Rows[1][0].IsEmpty())

	require.Equal(t, 1, FindColumn(table.Headers, "balance"))

	_, err = NewStructTable("", []int{1}, nil)
	require.Error(t, err)
	_, err = NewStructTable("", Invoice{}, nil)
	require.Error(t, err)
}

func TestSpacePascalCase(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "", want: ""},
		{name: "_", want: ""},
		{name: "TotalRevenue", want: "Total Revenue"},
		{name: "ARAging", want: "ARAging"},
		{name: "Hours_Billed", want: "Hours Billed"},
		{name: "already Spaced", want: "already Spaced"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SpacePascalCase(tt.name))
		})
	}
}
