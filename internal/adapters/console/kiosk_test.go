package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"faregate/internal/adapters/console"
	"faregate/internal/adapters/memory"
	"faregate/internal/core/domain"
	"faregate/internal/core/usecases"
	"faregate/internal/pkg/password"
)

// runKiosk feeds a scripted session to a fresh kiosk and returns its
// full output. The script lines are answers to prompts, in order.
func runKiosk(t *testing.T, script ...string) string {
	t.Helper()

	stations := memory.NewStationRepo([]domain.Station{
		{Name: "London", SinglePrice: 12.50, ReturnPrice: 20.00},
		{Name: "Bristol", SinglePrice: 8.00, ReturnPrice: 14.00},
	})
	offers := memory.NewOfferRepo()
	users := memory.NewUserRepo([]domain.User{
		{Username: "admin", Password: "adminpass", IsAdmin: true},
		{Username: "guest", Password: "guestpass", IsAdmin: false},
	})

	stationSvc := usecases.NewStationService(stations)
	offerSvc := usecases.NewOfferService(offers)
	pricingSvc := usecases.NewPricingService(offers)
	authSvc := usecases.NewAuthService(users, password.Plain{})
	machineSvc := usecases.NewMachineService("Central", stations, pricingSvc, nil)

	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	var out bytes.Buffer

	kiosk := console.New(stationSvc, offerSvc, machineSvc, authSvc, "£", in, &out)
	if err := kiosk.Run(context.Background()); err != nil {
		t.Fatalf("kiosk run: %v", err)
	}
	return out.String()
}

func TestKiosk_PurchaseSession(t *testing.T) {
	out := runKiosk(t,
		"1",      // user mode
		"2",      // insert money
		"15",     // amount
		"3",      // buy ticket
		"London", // destination
		"1",      // single
		"5",      // back
		"3",      // exit
	)

	for _, want := range []string{
		"Inserted: £15.00",
		"[Central]",
		"[London]",
		"Price: £12.50 [SINGLE]",
		"Purchase successful. Remaining credit: £2.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestKiosk_SearchAndRefund(t *testing.T) {
	out := runKiosk(t,
		"1",       // user mode
		"1",       // search
		"bristol", // case-insensitive
		"2",       // insert money
		"7.25",
		"4", // refund
		"5", // back
		"3", // exit
	)

	for _, want := range []string{
		"Bristol | Single £8.00 | Return £14.00",
		"Refunded £7.25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestKiosk_UnknownDestination(t *testing.T) {
	out := runKiosk(t,
		"1", // user mode
		"2", // insert money
		"50",
		"3", // buy
		"Nowhere",
		"1", // single
		"5", // back
		"3", // exit
	)

	if !strings.Contains(out, "Destination 'Nowhere' not found.") {
		t.Errorf("output missing not-found message\n%s", out)
	}
}

func TestKiosk_InsufficientFunds(t *testing.T) {
	out := runKiosk(t,
		"1", // user mode
		"2", // insert money
		"5",
		"3", // buy
		"London",
		"1",
		"5", // back
		"3", // exit
	)

	if !strings.Contains(out, "Insufficient funds. Inserted: £5.00") {
		t.Errorf("output missing insufficient-funds message\n%s", out)
	}
}

func TestKiosk_AdminSession(t *testing.T) {
	out := runKiosk(t,
		"2", // admin login
		"admin",
		"adminpass",
		"2", // add station
		"Cardiff",
		"9",
		"15",
		"1", // view stations
		"4", // change all prices
		"1.1",
		"5", // view takings
		"7", // logout
		"3", // exit
	)

	for _, want := range []string{
		"Admin Menu (Logged in as admin)",
		"Station added: Cardiff",
		"Cardiff | Single: £9.00 | Return: £15.00",
		"All prices updated by factor 1.1",
		"Total takings: £0.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestKiosk_AddStationRejectsNegativePrice(t *testing.T) {
	out := runKiosk(t,
		"2", // admin login
		"admin",
		"adminpass",
		"2", // add station
		"Typo",
		"-8", // mistyped price
		"14",
		"7", // logout
		"1", // user mode
		"1", // search for the rejected station
		"Typo",
		"5", // back
		"3", // exit
	)

	if !strings.Contains(out, "Error: price must not be negative") {
		t.Errorf("output missing price rejection\n%s", out)
	}
	if strings.Contains(out, "Station added: Typo") {
		t.Errorf("negative-priced station was added\n%s", out)
	}
	if !strings.Contains(out, "Station not found.") {
		t.Errorf("rejected station still findable\n%s", out)
	}
}

func TestKiosk_AdminLoginRejections(t *testing.T) {
	out := runKiosk(t,
		"2", // admin login
		"admin",
		"wrong",
		"2", // again, as a non-admin
		"guest",
		"guestpass",
		"3", // exit
	)

	if !strings.Contains(out, "Login failed.") {
		t.Errorf("output missing login failure\n%s", out)
	}
	if !strings.Contains(out, "Access denied. Not an admin.") {
		t.Errorf("output missing non-admin rejection\n%s", out)
	}
}

func TestKiosk_OfferManagement(t *testing.T) {
	out := runKiosk(t,
		"2", // admin login
		"admin",
		"adminpass",
		"6", // offer management
		"1", // view (empty)
		"2", // add offer
		"London",
		"2026-08-01",
		"2026-08-31",
		"0.8",
		"1", // view again
		"3", // delete
		"London",
		"4", // back
		"7", // logout
		"3", // exit
	)

	for _, want := range []string{
		"No special offers.",
		"Added offer for London",
		"London | 2026-08-01 to 2026-08-31 | Factor: 0.8",
		"Offers removed for London",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestKiosk_OfferRejectsBadDates(t *testing.T) {
	out := runKiosk(t,
		"2",
		"admin",
		"adminpass",
		"6", // offer management
		"2", // add offer
		"London",
		"2026-08-31", // start after end
		"2026-08-01",
		"0.8",
		"4", // back
		"7", // logout
		"3", // exit
	)

	if !strings.Contains(out, "Error:") {
		t.Errorf("output missing date-range rejection\n%s", out)
	}
}

func TestKiosk_EndsCleanlyOnEOF(t *testing.T) {
	// The script runs dry mid-menu; the kiosk must return, not loop.
	out := runKiosk(t, "1")
	if !strings.Contains(out, "User Menu") {
		t.Errorf("output missing user menu\n%s", out)
	}
}

func TestPrompter_ReadFloat(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("12.5\nabc\n\n"), &out)

	v, err := p.ReadFloat("? ")
	if err != nil || v == nil || *v != 12.5 {
		t.Errorf("ReadFloat = %v, %v; want 12.5", v, err)
	}

	v, err = p.ReadFloat("? ")
	if err != nil || v != nil {
		t.Errorf("non-numeric input: got %v, %v; want nil, nil", v, err)
	}

	v, err = p.ReadFloat("? ")
	if err != nil || v != nil {
		t.Errorf("blank input: got %v, %v; want nil, nil", v, err)
	}
}

func TestPrompter_ReadDate(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(strings.NewReader("2026-08-15\n15/08/2026\n"), &out)

	d, err := p.ReadDate("? ")
	if err != nil || d == nil {
		t.Fatalf("ReadDate = %v, %v", d, err)
	}
	if d.Year() != 2026 || d.Month() != 8 || d.Day() != 15 {
		t.Errorf("parsed %v", d)
	}

	d, err = p.ReadDate("? ")
	if err != nil || d != nil {
		t.Errorf("wrong format: got %v, %v; want nil, nil", d, err)
	}
}
