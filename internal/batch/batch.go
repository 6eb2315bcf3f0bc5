package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mntax-dev/mntax/internal/logger"
	"github.com/mntax-dev/mntax/internal/model"
	"github.com/mntax-dev/mntax/internal/schedule"
)

// InputHeader is the CSV header for batch input files.
const InputHeader = "id,filing_status,income"

// OutputHeader is the CSV header for batch result files.
const OutputHeader = "id,filing_status,income,basic_tax"

const (
	numInputFields = 3
	colID          = 0
	colStatus      = 1
	colIncome      = 2
)

// Result pairs a filing with its computed basic tax.
type Result struct {
	model.Filing
	BasicTax decimal.Decimal
}

// ReadFilings reads a filings CSV (id,filing_status,income).
func ReadFilings(r io.Reader) ([]model.Filing, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numInputFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading filings CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var filings []model.Filing
	for i, rec := range records[1:] {
		f, err := unmarshalFiling(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		filings = append(filings, f)
	}
	return filings, nil
}

func unmarshalFiling(record []string) (model.Filing, error) {
	status, err := model.ParseFilingStatus(record[colStatus])
	if err != nil {
		return model.Filing{}, err
	}

	income, err := decimal.NewFromString(record[colIncome])
	if err != nil {
		return model.Filing{}, fmt.Errorf("parsing income %q: %w", record[colIncome], err)
	}

	return model.Filing{
		ID:     record[colID],
		Status: status,
		Income: income,
	}, nil
}

// Process computes the basic tax owed for every filing. A filing whose
// income matches no bracket owes zero; that case is logged because it
// points at malformed schedule data.
func Process(svc *schedule.Service, filings []model.Filing) []Result {
	return lo.Map(filings, func(f model.Filing, _ int) Result {
		tax := decimal.Zero
		if b, ok := svc.Match(f.Status, f.Income); ok {
			tax = b.Tax(f.Income)
		} else {
			logger.Warn("no bracket matched income",
				zap.String("id", f.ID),
				zap.String("filing_status", string(f.Status)),
				zap.String("income", f.Income.String()),
			)
		}
		return Result{Filing: f, BasicTax: tax}
	})
}

// WriteResults writes results as CSV (id,filing_status,income,basic_tax).
func WriteResults(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(OutputHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, res := range results {
		row := []string{
			res.ID,
			string(res.Status),
			res.Income.StringFixed(2),
			res.BasicTax.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Run reads filings from inputPath, computes the basic tax for each,
// and writes results to outputPath. It returns the number of filings
// processed.
func Run(svc *schedule.Service, inputPath, outputPath string) (int, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("opening filings: %w", err)
	}
	defer in.Close()

	filings, err := ReadFilings(in)
	if err != nil {
		return 0, fmt.Errorf("reading filings: %w", err)
	}

	results := Process(svc, filings)

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("creating results file: %w", err)
	}
	defer out.Close()

	if err := WriteResults(out, results); err != nil {
		return 0, fmt.Errorf("writing results: %w", err)
	}
	return len(results), nil
}
