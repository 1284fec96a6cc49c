// Package file loads tabular datasets from the local filesystem.
// CSV files go through a brute-force trial of a fixed set of encodings
// and delimiters because exported spreadsheets rarely say what they
// contain; XLSX files are read with the first row as header.
package file

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tealeg/xlsx"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Detection records which encoding/delimiter combination a CSV load
// settled on.
type Detection struct {
	Encoding  string
	Delimiter rune
}

type candidateEncoding struct {
	name string
	enc  encoding.Encoding
	// applies reports whether the raw bytes can be this encoding at
	// all. The charmap decoders accept any byte sequence, so they
	// carry no check and must stay last in the list.
	applies func(raw []byte) bool
}

var candidateEncodings = []candidateEncoding{
	{"utf-8", unicode.UTF8BOM, validUTF8},
	{"utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), hasUTF16BOM},
	{"windows-1252", charmap.Windows1252, nil},
	{"iso-8859-1", charmap.ISO8859_1, nil},
}

var candidateDelimiters = []rune{',', ';', '\t', '|'}

// LoadCSV reads a CSV file, trying every known encoding/delimiter
// combination until one parses into more than one column. A clean
// single-column parse is kept as a fallback so narrow files still
// load. When nothing parses the load fails.
func LoadCSV(path string, naValues []string) (dataframe.DataFrame, Detection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dataframe.DataFrame{}, Detection{}, fmt.Errorf("failed to read csv file %s: %w", path, err)
	}

	var (
		fallback     dataframe.DataFrame
		fallbackDet  Detection
		haveFallback bool
	)

	for _, ce := range candidateEncodings {
		if ce.applies != nil && !ce.applies(raw) {
			continue
		}
		decoded, _, err := transform.Bytes(ce.enc.NewDecoder(), raw)
		if err != nil {
			continue
		}
		if bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}

		for _, delim := range candidateDelimiters {
			opts := []dataframe.LoadOption{
				dataframe.WithDelimiter(delim),
				dataframe.HasHeader(true),
				dataframe.WithLazyQuotes(true),
			}
			if len(naValues) > 0 {
				opts = append(opts, dataframe.NaNValues(naValues))
			}
			df := dataframe.ReadCSV(bytes.NewReader(decoded), opts...)
			if df.Err != nil {
				continue
			}
			det := Detection{Encoding: ce.name, Delimiter: delim}
			if df.Ncol() > 1 {
				return df, det, nil
			}
			if !haveFallback {
				fallback, fallbackDet, haveFallback = df, det, true
			}
		}
	}

	if haveFallback {
		return fallback, fallbackDet, nil
	}
	return dataframe.DataFrame{}, Detection{}, fmt.Errorf("no encoding/delimiter combination could parse %s", path)
}

// LoadTable dispatches on the file extension: .csv goes through
// LoadCSV, .xlsx through ReadXLSX.
func LoadTable(path, sheetName string, naValues []string) (dataframe.DataFrame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		df, _, err := LoadCSV(path, naValues)
		return df, err
	case ".xlsx":
		return ReadXLSX(path, sheetName)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("unsupported table file %s", path)
	}
}

// ReadXLSX loads one sheet of a workbook into a DataFrame. An empty
// sheet name selects the first sheet. All columns come back as
// strings; type conversion is the cleaning helpers' job.
func ReadXLSX(filePath, sheetName string) (dataframe.DataFrame, error) {
	xlFile, err := xlsx.OpenFile(filePath)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open xlsx file %s: %w", filePath, err)
	}
	return sheetToDataFrame(xlFile, sheetName)
}

// ReadXLSXBytes is ReadXLSX over in-memory workbook data.
func ReadXLSXBytes(data []byte, sheetName string) (dataframe.DataFrame, error) {
	xlFile, err := xlsx.OpenBinary(data)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open xlsx data: %w", err)
	}
	return sheetToDataFrame(xlFile, sheetName)
}

func sheetToDataFrame(xlFile *xlsx.File, sheetName string) (dataframe.DataFrame, error) {
	if len(xlFile.Sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("workbook has no sheets")
	}

	sheet := xlFile.Sheets[0]
	if sheetName != "" {
		s, ok := xlFile.Sheet[sheetName]
		if !ok {
			return dataframe.DataFrame{}, fmt.Errorf("sheet %q not found in workbook", sheetName)
		}
		sheet = s
	}

	if len(sheet.Rows) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("sheet %q is empty", sheet.Name)
	}

	var headers []string
	for _, cell := range sheet.Rows[0].Cells {
		headers = append(headers, cell.String())
	}
	if len(headers) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("sheet %q has no header row", sheet.Name)
	}

	columns := make([][]string, len(headers))
	for i := range columns {
		columns[i] = make([]string, 0, len(sheet.Rows)-1)
	}

	for _, row := range sheet.Rows[1:] {
		for i := range headers {
			val := ""
			if i < len(row.Cells) {
				val = row.Cells[i].String()
			}
			columns[i] = append(columns[i], val)
		}
	}

	seriesList := make([]series.Series, len(headers))
	for i, colName := range headers {
		seriesList[i] = series.New(columns[i], series.String, colName)
	}

	return dataframe.New(seriesList...), nil
}

func validUTF8(raw []byte) bool {
	// NUL bytes are technically valid UTF-8 but mean the file is
	// UTF-16 or binary, never a UTF-8 CSV.
	if bytes.IndexByte(raw, 0) >= 0 {
		return false
	}
	return utf8.Valid(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))
}

func hasUTF16BOM(raw []byte) bool {
	if len(raw) < 2 {
		return false
	}
	return (raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF)
}
