// Package driver posts the sample inputs to a running server and reports each
// result, for manual end-to-end checks.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/olekukonko/tablewriter"

	"blurbgen/internal/models"
)

const rule = "================================================================================"

// Options configures a loop run.
type Options struct {
	BaseURL string
	Timeout time.Duration // Per request
	Delay   time.Duration // Between requests
}

// DefaultOptions matches the original driver: local server, 30s timeout, 1s pause.
var DefaultOptions = Options{
	BaseURL: "http://localhost:5000",
	Timeout: 30 * time.Second,
	Delay:   time.Second,
}

// Outcome is the result for one sample.
type Outcome struct {
	Sample      models.Sample
	StatusCode  int
	Description string
	Err         string
}

// OK reports whether the server produced a description.
func (o Outcome) OK() bool { return o.Err == "" && o.StatusCode == 200 }

// Run posts every sample in order. It stops early if the server cannot be
// reached and returns the outcomes collected so far with that error.
func Run(ctx context.Context, out io.Writer, opts Options, samples []models.Sample) ([]Outcome, error) {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json")

	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Product Description Generator Test")
	fmt.Fprintln(out, rule)

	outcomes := make([]Outcome, 0, len(samples))
	for i, s := range samples {
		fmt.Fprintf(out, "\n[%d/%d] Testing: %s (%s)\n", i+1, len(samples), s.ProductName, s.Category)

		outcome, err := post(ctx, client, s)
		if err != nil {
			if isConnectionError(err) {
				fail.Fprintln(out, "Connection Error: make sure the server is running!")
				fmt.Fprintln(out, "   Start it with: blurbgen serve")
				return outcomes, err
			}
			fail.Fprintf(out, "Exception: %v\n", err)
			outcome.Err = err.Error()
		} else if outcome.OK() {
			ok.Fprintln(out, "Success!")
			fmt.Fprintf(out, "Product: %s\nCategory: %s\nDescription: %s\n", s.ProductName, s.Category, outcome.Description)
		} else {
			fail.Fprintf(out, "Error: %d\n", outcome.StatusCode)
			fmt.Fprintf(out, "Response: %s\n", outcome.Err)
		}
		outcomes = append(outcomes, outcome)

		if i < len(samples)-1 && opts.Delay > 0 {
			select {
			case <-ctx.Done():
				return outcomes, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}
	}

	fmt.Fprintln(out)
	RenderSummary(out, outcomes)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Test completed!")
	fmt.Fprintln(out, rule)
	return outcomes, nil
}

func post(ctx context.Context, client *resty.Client, s models.Sample) (Outcome, error) {
	var result models.GenerationResult
	var apiErr struct {
		Error string `json:"error"`
	}

	outcome := Outcome{Sample: s}
	resp, err := client.R().
		SetContext(ctx).
		SetBody(s.Request()).
		SetResult(&result).
		SetError(&apiErr).
		Post("/generate")
	if err != nil {
		return outcome, err
	}

	outcome.StatusCode = resp.StatusCode()
	if resp.IsSuccess() {
		outcome.Description = result.Description
		return outcome, nil
	}
	outcome.Err = apiErr.Error
	if outcome.Err == "" {
		outcome.Err = resp.String()
	}
	return outcome, nil
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// RenderSummary writes one table row per outcome.
func RenderSummary(out io.Writer, outcomes []Outcome) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Product", "Category", "Status", "Description"})
	for _, o := range outcomes {
		status := strconv.Itoa(o.StatusCode)
		desc := o.Description
		if !o.OK() {
			desc = o.Err
		}
		table.Append([]string{o.Sample.ProductName, o.Sample.Category, status, desc})
	}
	table.Render()
}
