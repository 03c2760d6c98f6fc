package tabular_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tirtadata/tirtabill/pkg/tabular"
	"github.com/xuri/excelize/v2"
)

func sampleTable() *tabular.Table {
	return &tabular.Table{
		Name:   "sample",
		Header: []string{"No Sambungan", "Satker", "Golongan"},
		Rows: [][]any{
			{"A001", "Yonif 400", "2A"},
			{"A002", "Kodim 0701", "3B"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable().WriteCSV(&buf))

	want := "No Sambungan,Satker,Golongan\n" +
		"A001,Yonif 400,2A\n" +
		"A002,Kodim 0701,3B\n"
	require.Equal(t, want, buf.String())
}

func TestWriteCSVFormatsScalars(t *testing.T) {
	table := &tabular.Table{
		Name:   "scalars",
		Header: []string{"n", "f", "b", "s"},
		Rows:   [][]any{{1, 2.5, true, "x"}},
	}

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))
	require.Equal(t, "n,f,b,s\n1,2.5,true,x\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	file, err := sampleTable().WriteXLSX()
	require.NoError(t, err)
	defer func() { _ = file.Cleanup() }()

	require.Equal(t, "sample.xlsx", file.Name)

	book, err := excelize.OpenFile(file.Path)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(book.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"No Sambungan", "Satker", "Golongan"}, rows[0])
	require.Equal(t, []string{"A001", "Yonif 400", "2A"}, rows[1])
}

func TestFileCleanup(t *testing.T) {
	file, err := sampleTable().WriteXLSX()
	require.NoError(t, err)

	require.NoError(t, file.Cleanup())
	_, err = os.Stat(file.Path)
	require.True(t, os.IsNotExist(err))
}
