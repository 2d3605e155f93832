package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"faregate/internal/core/domain"
	"faregate/internal/pkg/token"
)

const dateLayout = "2006-01-02"

// ---- Stations ----

// ListStationsHandler returns the catalogue in insertion order.
func ListStationsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stations, err := deps.Stations.List(c.Context())
		if err != nil {
			return errInternal(c, err.Error())
		}

		page, pg := paginate(stations, c.QueryInt("offset", 0), c.QueryInt("limit", 100))
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: page, Pagination: pg})
	}
}

// GetStationHandler resolves one destination by (case-insensitive) name.
func GetStationHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		if name == "" {
			return errBadRequest(c, "station name is required")
		}
		station, err := deps.Stations.FindByName(c.Context(), name)
		if err != nil {
			return errNotFound(c, "station not found")
		}
		return c.JSON(station)
	}
}

type createStationRequest struct {
	Name        string  `json:"name"`
	SinglePrice float64 `json:"single_price"`
	ReturnPrice float64 `json:"return_price"`
}

// CreateStationHandler appends a station to the catalogue. Names are
// not deduplicated; a repeated name shadows the earlier entry.
func CreateStationHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createStationRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		if req.Name == "" {
			return errBadRequest(c, "name is required")
		}

		station := domain.Station{
			Name:        req.Name,
			SinglePrice: req.SinglePrice,
			ReturnPrice: req.ReturnPrice,
		}
		if err := deps.Stations.Add(c.Context(), station); err != nil {
			return errDomain(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(station)
	}
}

type editStationRequest struct {
	SinglePrice *float64 `json:"single_price"`
	ReturnPrice *float64 `json:"return_price"`
}

// EditStationHandler updates only the price fields present in the body.
func EditStationHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		if name == "" {
			return errBadRequest(c, "station name is required")
		}

		var req editStationRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		if req.SinglePrice == nil && req.ReturnPrice == nil {
			return errBadRequest(c, "nothing to update")
		}

		if err := deps.Stations.Edit(c.Context(), name, req.SinglePrice, req.ReturnPrice); err != nil {
			return errDomain(c, err)
		}

		station, err := deps.Stations.FindByName(c.Context(), name)
		if err != nil {
			return errDomain(c, err)
		}
		return c.JSON(station)
	}
}

type rescaleRequest struct {
	Factor float64 `json:"factor"`
}

// RescaleHandler multiplies every station's prices by a positive factor.
func RescaleHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req rescaleRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		if err := deps.Stations.Rescale(c.Context(), req.Factor); err != nil {
			return errDomain(c, err)
		}
		return c.JSON(fiber.Map{"factor": req.Factor})
	}
}

// ---- Offers ----

// ListOffersHandler returns every configured offer, active or not.
func ListOffersHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offers, err := deps.Offers.List(c.Context())
		if err != nil {
			return errInternal(c, err.Error())
		}

		page, pg := paginate(offers, c.QueryInt("offset", 0), c.QueryInt("limit", 100))
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: page, Pagination: pg})
	}
}

type createOfferRequest struct {
	StationName    string  `json:"station_name"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	DiscountFactor float64 `json:"discount_factor"`
}

// CreateOfferHandler stores a new offer. Dates are ISO calendar dates;
// the end date must not precede the start date.
func CreateOfferHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createOfferRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		if req.StationName == "" {
			return errBadRequest(c, "station_name is required")
		}

		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return errBadRequest(c, "start_date must be YYYY-MM-DD")
		}
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return errBadRequest(c, "end_date must be YYYY-MM-DD")
		}

		offer := domain.SpecialOffer{
			StationName:    req.StationName,
			StartDate:      start,
			EndDate:        end,
			DiscountFactor: req.DiscountFactor,
		}
		if err := deps.Offers.Add(c.Context(), offer); err != nil {
			return errDomain(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(offer)
	}
}

// DeleteOffersHandler removes every offer for a station.
func DeleteOffersHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		station := c.Params("station")
		if station == "" {
			return errBadRequest(c, "station name is required")
		}
		removed, err := deps.Offers.DeleteForStation(c.Context(), station)
		if err != nil {
			return errDomain(c, err)
		}
		return c.JSON(fiber.Map{"station": station, "removed": removed})
	}
}

// ---- Pricing ----

// QuoteHandler prices a ticket without selling it.
// GET /v1/quotes?station=London&type=return
func QuoteHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("station")
		if name == "" {
			return errBadRequest(c, "station query parameter is required")
		}
		ticketType, err := domain.ParseTicketType(c.Query("type", "single"))
		if err != nil {
			return errDomain(c, err)
		}

		station, err := deps.Stations.FindByName(c.Context(), name)
		if err != nil {
			return errDomain(c, err)
		}

		quote, err := deps.Pricing.Quote(c.Context(), station, ticketType, time.Now())
		if err != nil {
			return errInternal(c, err.Error())
		}
		return c.JSON(quote)
	}
}

// ---- Machine ----

type insertMoneyRequest struct {
	Amount float64 `json:"amount"`
}

// InsertMoneyHandler adds credit to the machine.
func InsertMoneyHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req insertMoneyRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		balance, err := deps.Machine.InsertMoney(c.Context(), req.Amount)
		if err != nil {
			return errDomain(c, err)
		}
		return c.JSON(fiber.Map{"balance": balance})
	}
}

type buyTicketRequest struct {
	Destination string `json:"destination"`
	Type        string `json:"type"`
}

// BuyTicketHandler performs a purchase and returns the receipt.
func BuyTicketHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req buyTicketRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		if req.Destination == "" {
			return errBadRequest(c, "destination is required")
		}
		ticketType, err := domain.ParseTicketType(req.Type)
		if err != nil {
			return errDomain(c, err)
		}

		ticket, err := deps.Machine.BuyTicket(c.Context(), req.Destination, ticketType)
		if err != nil {
			return errDomain(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"ticket":  ticket,
			"balance": deps.Machine.Balance(),
		})
	}
}

// RefundHandler returns whatever credit is inserted. Refunding zero is
// a valid no-op.
func RefundHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		amount := deps.Machine.Refund(c.Context())
		return c.JSON(fiber.Map{"refunded": amount, "balance": 0})
	}
}

// MachineStatusHandler reports the controller's balances.
func MachineStatusHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"origin":  deps.Machine.Origin(),
			"balance": deps.Machine.Balance(),
			"takings": deps.Machine.Takings(),
		})
	}
}

// ---- Auth ----

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler checks credentials and issues an access token.
func LoginHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		user, err := deps.Auth.Login(c.Context(), req.Username, req.Password)
		if err != nil {
			return errDomain(c, err)
		}

		t, err := token.Generate(user.Username, user.IsAdmin,
			deps.Cfg.Auth.JWTSecret, deps.Cfg.Auth.TokenExpiryMinutes)
		if err != nil {
			return errInternal(c, err.Error())
		}

		return c.JSON(fiber.Map{"token": t, "user": user})
	}
}
