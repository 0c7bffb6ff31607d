package manufacturer_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/achuth-0908/scgateway/internal/database"
	"github.com/achuth-0908/scgateway/internal/manufacturer"
	"github.com/achuth-0908/scgateway/internal/testutil"
)

func TestManufacturerInsertAndList(t *testing.T) {
	ctx := context.Background()
	svc := manufacturer.NewService(testutil.NewTestGateway(t))

	got, err := svc.GetManufacturers(ctx)
	if err != nil {
		t.Fatalf("get manufacturers: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	want := []manufacturer.Manufacturer{
		{ManufacturerID: 10, Name: testutil.Str("Northwind"), Address: testutil.Str("12 Harbor Way"), PhoneNo: testutil.Str("555-0110"), Email: testutil.Str("ops@northwind.test")},
		{ManufacturerID: 11, Name: testutil.Str("Initech"), Address: testutil.Str("4 Office Park"), PhoneNo: testutil.Str("555-0111"), Email: testutil.Str("info@initech.test")},
	}
	for i := range want {
		if err := svc.InsertManufacturer(ctx, &want[i]); err != nil {
			t.Fatalf("insert manufacturer %d: %v", want[i].ManufacturerID, err)
		}

		got, err := svc.GetManufacturers(ctx)
		if err != nil {
			t.Fatalf("get manufacturers: %v", err)
		}
		if len(got) != i+1 {
			t.Fatalf("expected %d rows after insert, got %d", i+1, len(got))
		}
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("expected %#v, got %#v", want[i], got[i])
		}
	}

	first, err := svc.GetManufacturers(ctx)
	if err != nil {
		t.Fatalf("get manufacturers: %v", err)
	}
	second, err := svc.GetManufacturers(ctx)
	if err != nil {
		t.Fatalf("get manufacturers again: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical reads, got %#v then %#v", first, second)
	}
}

func TestManufacturerNullColumns(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	svc := manufacturer.NewService(testutil.NewTestGatewayAt(t, dbPath, true))

	testutil.Exec(t, dbPath,
		`INSERT INTO manufacturer (manufacturer_id, address) VALUES (1, '1 Dock St')`,
		`INSERT INTO manufacturer (manufacturer_id) VALUES (2)`,
	)

	got, err := svc.GetManufacturers(ctx)
	if err != nil {
		t.Fatalf("get manufacturers: %v", err)
	}
	want := []manufacturer.Manufacturer{
		{ManufacturerID: 1, Address: testutil.Str("1 Dock St")},
		{ManufacturerID: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %#v, got %#v", want, got)
	}
}

func TestManufacturerDuplicateID(t *testing.T) {
	ctx := context.Background()
	svc := manufacturer.NewService(testutil.NewTestGateway(t))

	if err := svc.InsertManufacturer(ctx, &manufacturer.Manufacturer{ManufacturerID: 1, Name: testutil.Str("First")}); err != nil {
		t.Fatalf("insert first manufacturer: %v", err)
	}

	err := svc.InsertManufacturer(ctx, &manufacturer.Manufacturer{ManufacturerID: 1, Name: testutil.Str("Second")})
	if err == nil {
		t.Fatal("expected error for duplicate manufacturer id, got none")
	}
	if !database.IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got: %v", err)
	}
}

func TestManufacturerUnreachableStore(t *testing.T) {
	ctx := context.Background()

	for _, pooled := range []bool{false, true} {
		svc := manufacturer.NewService(testutil.NewUnreachableGateway(t, pooled))

		rows, err := svc.GetManufacturers(ctx)
		if rows != nil {
			t.Errorf("pooled=%v: expected nil rows, got %#v", pooled, rows)
		}
		if !database.IsConnectError(err) {
			t.Errorf("pooled=%v: expected connect error from read, got %v", pooled, err)
		}

		err = svc.InsertManufacturer(ctx, &manufacturer.Manufacturer{ManufacturerID: 1, Name: testutil.Str("Nobody")})
		if !database.IsConnectError(err) {
			t.Errorf("pooled=%v: expected connect error from insert, got %v", pooled, err)
		}
	}
}
