package analytics

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talenthub/internal/types"
)

// ApplicationSource supplies flattened application rows for a company,
// optionally narrowed to a set of lifecycle statuses. An empty status list
// matches everything.
type ApplicationSource interface {
	ApplicationDigests(ctx context.Context, companyID uuid.UUID, statuses []types.StatusType) ([]types.ApplicationDigest, error)
}

// StatusFilter expands a status query value into the status types to match.
// "Completed" is an umbrella for the terminal statuses; an empty value means
// no filtering.
func StatusFilter(status string) []types.StatusType {
	switch status {
	case "":
		return nil
	case "Completed":
		return append([]types.StatusType(nil), types.CompletedStatuses...)
	default:
		return []types.StatusType{types.StatusType(status)}
	}
}

// JobTitleOption pairs a posting with its job title for the chart pickers.
type JobTitleOption struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"jobTitle"`
}

// SeriesOptions is the picker metadata for the application analytics charts.
type SeriesOptions struct {
	Years           []string         `json:"years"`
	EmploymentTypes []string         `json:"employmentTypes"`
	JobTitles       []JobTitleOption `json:"jobTitles"`
}

// ApplicationOptions extracts the distinct years, employment types and job
// titles present in the rows, in first-seen order.
func ApplicationOptions(rows []types.ApplicationDigest) SeriesOptions {
	options := SeriesOptions{
		Years:           []string{},
		EmploymentTypes: []string{},
		JobTitles:       []JobTitleOption{},
	}

	seenYears := make(map[string]struct{})
	seenTypes := make(map[string]struct{})
	seenPostings := make(map[uuid.UUID]struct{})

	for _, row := range rows {
		year := strconv.Itoa(row.CreatedAt.Year())
		if _, ok := seenYears[year]; !ok {
			seenYears[year] = struct{}{}
			options.Years = append(options.Years, year)
		}
		if _, ok := seenTypes[row.EmploymentType]; !ok {
			seenTypes[row.EmploymentType] = struct{}{}
			options.EmploymentTypes = append(options.EmploymentTypes, row.EmploymentType)
		}
		if _, ok := seenPostings[row.PostingID]; !ok {
			seenPostings[row.PostingID] = struct{}{}
			options.JobTitles = append(options.JobTitles, JobTitleOption{ID: row.PostingID, Title: row.JobTitle})
		}
	}
	return options
}

// MonthCount is one point of the twelve-month series.
type MonthCount struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

// MonthlySeries buckets the rows matching every selected year, employment
// type and posting into per-month counts for a calendar-year chart.
func MonthlySeries(rows []types.ApplicationDigest, years []string, employmentTypes []string, postings []uuid.UUID) []MonthCount {
	yearSet := make(map[string]struct{}, len(years))
	for _, y := range years {
		yearSet[y] = struct{}{}
	}
	typeSet := make(map[string]struct{}, len(employmentTypes))
	for _, t := range employmentTypes {
		typeSet[t] = struct{}{}
	}
	postingSet := make(map[uuid.UUID]struct{}, len(postings))
	for _, id := range postings {
		postingSet[id] = struct{}{}
	}

	var counts [12]int
	for _, row := range rows {
		if _, ok := yearSet[strconv.Itoa(row.CreatedAt.Year())]; !ok {
			continue
		}
		if _, ok := typeSet[row.EmploymentType]; !ok {
			continue
		}
		if _, ok := postingSet[row.PostingID]; !ok {
			continue
		}
		counts[int(row.CreatedAt.Month())-1]++
	}

	series := make([]MonthCount, 12)
	for i, count := range counts {
		series[i] = MonthCount{Month: time.Month(i + 1).String(), Value: count}
	}
	return series
}
