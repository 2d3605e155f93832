package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"faregate/internal/core/domain"
	"faregate/internal/core/usecases"
)

// Kiosk is the line-oriented front end. It owns no business rules:
// every action calls into the services and renders the outcome, and
// every validation failure is reported and survived — the menu loop
// only ends on an explicit exit or when the input runs dry.
type Kiosk struct {
	stations *usecases.StationService
	offers   *usecases.OfferService
	machine  *usecases.MachineService
	auth     *usecases.AuthService

	currency string
	prompt   *Prompter
	out      io.Writer
}

// New creates a kiosk over the given streams.
func New(
	stations *usecases.StationService,
	offers *usecases.OfferService,
	machine *usecases.MachineService,
	auth *usecases.AuthService,
	currency string,
	in io.Reader,
	out io.Writer,
) *Kiosk {
	return &Kiosk{
		stations: stations,
		offers:   offers,
		machine:  machine,
		auth:     auth,
		currency: currency,
		prompt:   NewPrompter(in, out),
		out:      out,
	}
}

func (k *Kiosk) printf(format string, args ...any) {
	fmt.Fprintf(k.out, format, args...)
}

// Run drives the main menu until the user exits.
func (k *Kiosk) Run(ctx context.Context) error {
	for {
		k.printf("\n====== Ticket Machine ======\n1) User Mode\n2) Admin Login\n3) Exit\n")
		choice, err := k.prompt.ReadLine("Choose option: ")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			if err := k.userMenu(ctx); err != nil {
				return nil
			}
		case "2":
			if err := k.adminLogin(ctx); err != nil {
				return nil
			}
		case "3":
			return nil
		default:
			k.printf("Invalid option. Try again.\n")
		}
	}
}

// ---- User mode ----

func (k *Kiosk) userMenu(ctx context.Context) error {
	for {
		k.printf("\n--- User Menu ---\n1) Search Ticket\n2) Insert Money\n3) Buy Ticket\n4) Refund\n5) Back\n")
		choice, err := k.prompt.ReadLine("Choose: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := k.searchStation(ctx); err != nil {
				return err
			}
		case "2":
			if err := k.insertMoney(ctx); err != nil {
				return err
			}
		case "3":
			if err := k.buyTicket(ctx); err != nil {
				return err
			}
		case "4":
			amount := k.machine.Refund(ctx)
			k.printf("Refunded %s%.2f\n", k.currency, amount)
		case "5":
			return nil
		default:
			k.printf("Invalid option.\n")
		}
	}
}

func (k *Kiosk) searchStation(ctx context.Context) error {
	name, err := k.prompt.ReadLine("Enter destination: ")
	if err != nil {
		return err
	}
	station, lookupErr := k.stations.FindByName(ctx, name)
	if lookupErr != nil {
		k.printf("Station not found.\n")
		return nil
	}
	k.printf("%s | Single %s%.2f | Return %s%.2f\n",
		station.Name, k.currency, station.SinglePrice, k.currency, station.ReturnPrice)
	return nil
}

func (k *Kiosk) insertMoney(ctx context.Context) error {
	amount, err := k.prompt.ReadFloat("Enter amount: ")
	if err != nil {
		return err
	}
	if amount == nil {
		k.printf("Invalid amount.\n")
		return nil
	}
	balance, insertErr := k.machine.InsertMoney(ctx, *amount)
	if insertErr != nil {
		k.printf("Please insert a positive amount.\n")
		return nil
	}
	k.printf("Inserted: %s%.2f\n", k.currency, balance)
	return nil
}

func (k *Kiosk) buyTicket(ctx context.Context) error {
	dest, err := k.prompt.ReadLine("Destination: ")
	if err != nil {
		return err
	}
	choice, err := k.prompt.ReadLine("1) Single 2) Return: ")
	if err != nil {
		return err
	}

	var ticketType domain.TicketType
	switch choice {
	case "1":
		ticketType = domain.TicketSingle
	case "2":
		ticketType = domain.TicketReturn
	default:
		k.printf("Invalid type.\n")
		return nil
	}

	ticket, buyErr := k.machine.BuyTicket(ctx, dest, ticketType)
	switch {
	case buyErr == nil:
		k.printf("%s\n", ticket.Receipt(k.currency))
		k.printf("Purchase successful. Remaining credit: %s%.2f\n", k.currency, k.machine.Balance())
	case errors.Is(buyErr, domain.ErrStationNotFound):
		k.printf("Destination '%s' not found.\n", dest)
	case errors.Is(buyErr, domain.ErrInsufficientFunds):
		k.printf("Insufficient funds. Inserted: %s%.2f\n", k.currency, k.machine.Balance())
	default:
		k.printf("Error: %v\n", buyErr)
	}
	return nil
}

// ---- Admin mode ----

func (k *Kiosk) adminLogin(ctx context.Context) error {
	username, err := k.prompt.ReadLine("Enter username: ")
	if err != nil {
		return err
	}
	pass, err := k.prompt.ReadLine("Enter password: ")
	if err != nil {
		return err
	}

	user, loginErr := k.auth.Login(ctx, username, pass)
	if loginErr != nil {
		k.printf("Login failed.\n")
		return nil
	}
	if !user.IsAdmin {
		k.printf("Access denied. Not an admin.\n")
		return nil
	}
	return k.adminMenu(ctx, user)
}

func (k *Kiosk) adminMenu(ctx context.Context, admin *domain.User) error {
	for {
		k.printf("\n--- Admin Menu (Logged in as %s) ---\n"+
			"1) View stations\n2) Add station\n3) Edit station\n4) Change all prices\n"+
			"5) View takings\n6) Offer management\n7) Logout\n", admin.Username)
		choice, err := k.prompt.ReadLine("Choose: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := k.viewStations(ctx); err != nil {
				return err
			}
		case "2":
			if err := k.addStation(ctx); err != nil {
				return err
			}
		case "3":
			if err := k.editStation(ctx); err != nil {
				return err
			}
		case "4":
			if err := k.rescalePrices(ctx); err != nil {
				return err
			}
		case "5":
			k.printf("Total takings: %s%.2f\nInserted credit: %s%.2f\n",
				k.currency, k.machine.Takings(), k.currency, k.machine.Balance())
		case "6":
			if err := k.offerMenu(ctx); err != nil {
				return err
			}
		case "7":
			return nil
		default:
			k.printf("Invalid option.\n")
		}
	}
}

func (k *Kiosk) viewStations(ctx context.Context) error {
	stations, err := k.stations.List(ctx)
	if err != nil {
		k.printf("Error: %v\n", err)
		return nil
	}
	if len(stations) == 0 {
		k.printf("No stations available.\n")
		return nil
	}
	k.printf("\nStations:\n")
	for _, s := range stations {
		k.printf("%s | Single: %s%.2f | Return: %s%.2f | Sales: %d\n",
			s.Name, k.currency, s.SinglePrice, k.currency, s.ReturnPrice, s.SalesCount)
	}
	return nil
}

func (k *Kiosk) addStation(ctx context.Context) error {
	name, err := k.prompt.ReadLine("Enter station name: ")
	if err != nil {
		return err
	}
	single, err := k.prompt.ReadFloat("Enter single price: ")
	if err != nil {
		return err
	}
	if single == nil {
		k.printf("Invalid single price\n")
		return nil
	}
	ret, err := k.prompt.ReadFloat("Enter return price: ")
	if err != nil {
		return err
	}
	if ret == nil {
		k.printf("Invalid return price\n")
		return nil
	}

	if addErr := k.stations.Add(ctx, domain.Station{Name: name, SinglePrice: *single, ReturnPrice: *ret}); addErr != nil {
		k.printf("Error: %v\n", addErr)
		return nil
	}
	k.printf("Station added: %s\n", name)
	return nil
}

func (k *Kiosk) editStation(ctx context.Context) error {
	name, err := k.prompt.ReadLine("Station name: ")
	if err != nil {
		return err
	}
	single, err := k.prompt.ReadFloat("New single price (blank skip): ")
	if err != nil {
		return err
	}
	ret, err := k.prompt.ReadFloat("New return price (blank skip): ")
	if err != nil {
		return err
	}

	if editErr := k.stations.Edit(ctx, name, single, ret); editErr != nil {
		k.printf("Station not found.\n")
		return nil
	}
	k.printf("Station updated: %s\n", name)
	return nil
}

func (k *Kiosk) rescalePrices(ctx context.Context) error {
	factor, err := k.prompt.ReadFloat("Enter factor (1.1 = +10%, 0.8 = -20%): ")
	if err != nil {
		return err
	}
	if factor == nil {
		k.printf("Invalid factor.\n")
		return nil
	}
	if rescaleErr := k.stations.Rescale(ctx, *factor); rescaleErr != nil {
		k.printf("Factor must be positive.\n")
		return nil
	}
	k.printf("All prices updated by factor %g\n", *factor)
	return nil
}

// ---- Offer management ----

func (k *Kiosk) offerMenu(ctx context.Context) error {
	for {
		k.printf("\n--- Offer Management ---\n1) View offers\n2) Add offer\n3) Delete offers\n4) Back\n")
		choice, err := k.prompt.ReadLine("Choose: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := k.viewOffers(ctx); err != nil {
				return err
			}
		case "2":
			if err := k.addOffer(ctx); err != nil {
				return err
			}
		case "3":
			if err := k.deleteOffers(ctx); err != nil {
				return err
			}
		case "4":
			return nil
		default:
			k.printf("Invalid option.\n")
		}
	}
}

func (k *Kiosk) viewOffers(ctx context.Context) error {
	offers, err := k.offers.List(ctx)
	if err != nil {
		k.printf("Error: %v\n", err)
		return nil
	}
	if len(offers) == 0 {
		k.printf("No special offers.\n")
		return nil
	}
	k.printf("\nSpecial Offers:\n")
	for _, o := range offers {
		k.printf("%s | %s to %s | Factor: %g\n",
			o.StationName, o.StartDate.Format("2006-01-02"), o.EndDate.Format("2006-01-02"), o.DiscountFactor)
	}
	return nil
}

func (k *Kiosk) addOffer(ctx context.Context) error {
	name, err := k.prompt.ReadLine("Station name: ")
	if err != nil {
		return err
	}
	start, err := k.prompt.ReadDate("Start (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := k.prompt.ReadDate("End (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	factor, err := k.prompt.ReadFloat("Discount (0.8 = 20% off): ")
	if err != nil {
		return err
	}

	if start == nil || end == nil || factor == nil {
		k.printf("Invalid input.\n")
		return nil
	}

	offer := domain.SpecialOffer{
		StationName:    name,
		StartDate:      *start,
		EndDate:        *end,
		DiscountFactor: *factor,
	}
	if addErr := k.offers.Add(ctx, offer); addErr != nil {
		k.printf("Error: %v\n", addErr)
		return nil
	}
	k.printf("Added offer for %s\n", name)
	return nil
}

func (k *Kiosk) deleteOffers(ctx context.Context) error {
	name, err := k.prompt.ReadLine("Station name: ")
	if err != nil {
		return err
	}
	removed, delErr := k.offers.DeleteForStation(ctx, name)
	if delErr != nil {
		k.printf("Error: %v\n", delErr)
		return nil
	}
	if removed {
		k.printf("Offers removed for %s\n", name)
	} else {
		k.printf("No offers found for %s\n", name)
	}
	return nil
}
