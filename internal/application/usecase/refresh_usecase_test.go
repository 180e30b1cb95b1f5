package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// fakeBillingRepo returns a canned set of line items or a canned error.
type fakeBillingRepo struct {
	items []entity.ServiceCost
	err   error
}

func (f *fakeBillingRepo) GetAccountID(context.Context) (string, error) {
	return "123456789012", nil
}

func (f *fakeBillingRepo) GetDailyServiceCosts(context.Context, time.Time, time.Time) ([]entity.ServiceCost, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// fakeRecordRepo keeps records in memory keyed by (record_date, service_name)
// so it has the same upsert semantics as the real store. Individual dates or
// services can be made to fail.
type fakeRecordRepo struct {
	store     map[string]map[string]entity.CostRecord
	failDates map[string]bool
	failPuts  map[string]bool
	puts      int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{
		store:     map[string]map[string]entity.CostRecord{},
		failDates: map[string]bool{},
		failPuts:  map[string]bool{},
	}
}

func (f *fakeRecordRepo) PutRecord(_ context.Context, record entity.CostRecord) error {
	f.puts++
	if f.failPuts[record.ServiceName] {
		return errors.New("provisioned throughput exceeded")
	}
	day, ok := f.store[record.RecordDate]
	if !ok {
		day = map[string]entity.CostRecord{}
		f.store[record.RecordDate] = day
	}
	day[record.ServiceName] = record
	return nil
}

func (f *fakeRecordRepo) QueryByDate(_ context.Context, recordDate string) ([]entity.CostRecord, error) {
	if f.failDates[recordDate] {
		return nil, errors.New("query timed out")
	}
	var records []entity.CostRecord
	for _, record := range f.store[recordDate] {
		records = append(records, record)
	}
	return records, nil
}

func (f *fakeRecordRepo) seed(date string, category entity.Category, service string, amount float64) {
	_ = f.PutRecord(context.Background(), entity.CostRecord{
		RecordDate:      date,
		ServiceCategory: category,
		ServiceName:     service,
		Amount:          amount,
	})
}

// fakeSink records every written document and can be made to fail.
type fakeSink struct {
	location string
	err      error
	writes   []entity.DashboardDocument
}

func (f *fakeSink) WriteDocument(_ context.Context, doc entity.DashboardDocument) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.writes = append(f.writes, doc)
	return f.location, nil
}

func newTestUseCase(billing *fakeBillingRepo, records *fakeRecordRepo, primary, mirror *fakeSink, window int) *RefreshUseCase {
	params := RefreshParams{
		Billing:     billing,
		Records:     records,
		PrimarySink: primary,
		TrendWindow: window,
	}
	if mirror != nil {
		params.MirrorSink = mirror
	}
	return NewRefreshUseCase(params)
}

func mustDate(s string) time.Time {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("bad test date %q: %v", s, err))
	}
	return d
}
