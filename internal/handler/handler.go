package handler

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/gusau-brt/ticketing-service/internal/models"
	service "github.com/gusau-brt/ticketing-service/internal/services"
	pkgerrors "github.com/gusau-brt/ticketing-service/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const noUsersWarning = "No registered users yet."

type Handler struct {
	service service.TicketingService
	qrDir   string
}

func NewHandler(s service.TicketingService, qrDir string) *Handler {
	return &Handler{service: s, qrDir: qrDir}
}

// screenData is the model every screen template renders from; each screen
// uses the slice of fields it needs.
type screenData struct {
	Title       string
	UserIDs     []string
	Roles       []models.Role
	Methods     []models.FundingMethod
	TicketTypes []string

	Error   string
	Warning string
	Success string

	UserID  string
	Balance string
	Ticket  *models.Ticket
	Tickets []models.Ticket
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/register", h.RegisterForm).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/wallet/load", h.LoadWalletForm).Methods("GET")
	r.HandleFunc("/wallet/load", h.LoadWallet).Methods("POST")
	r.HandleFunc("/wallet/balance", h.BalanceForm).Methods("GET")
	r.HandleFunc("/wallet/balance", h.CheckBalance).Methods("POST")
	r.HandleFunc("/tickets/buy", h.BuyTicketForm).Methods("GET")
	r.HandleFunc("/tickets/buy", h.BuyTicket).Methods("POST")
	r.HandleFunc("/receipts/{ticket_id:TKT-[0-9]+}.png", h.DownloadReceipt).Methods("GET")
}

func (h *Handler) render(w http.ResponseWriter, name string, data screenData) {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", screenData{Title: "Gusau BRT – Ticketing & Wallet System"})
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", h.registerData(""))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "register.html", h.registerData("Bad request."))
		return
	}
	role, err := models.ParseRole(r.FormValue("role"))
	if err != nil {
		h.render(w, "register.html", h.registerData(err.Error()))
		return
	}

	userID, err := h.service.RegisterUser(r.Context(),
		r.FormValue("first_name"), role, r.FormValue("phone"), r.FormValue("bus_stop"))
	if err != nil {
		slog.Error("register failed", "error", err)
		h.render(w, "register.html", h.registerData("Registration failed."))
		return
	}

	data := h.registerData("")
	data.Success = fmt.Sprintf("Registered successfully. USER ID: %s", userID)
	h.render(w, "register.html", data)
}

func (h *Handler) LoadWalletForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "load_wallet.html", h.walletData(r, ""))
}

func (h *Handler) LoadWallet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "load_wallet.html", h.walletData(r, "Bad request."))
		return
	}
	method, err := models.ParseFundingMethod(r.FormValue("method"))
	if err != nil {
		h.render(w, "load_wallet.html", h.walletData(r, "Unknown funding method."))
		return
	}
	amount, err := decimal.NewFromString(r.FormValue("amount"))
	if err != nil {
		h.render(w, "load_wallet.html", h.walletData(r, "Invalid amount."))
		return
	}

	userID := r.FormValue("user_id")
	if _, err := h.service.LoadWallet(r.Context(), userID, method, amount); err != nil {
		h.render(w, "load_wallet.html", h.walletData(r, h.userMessage(err, "Funding failed.")))
		return
	}

	data := h.walletData(r, "")
	data.Success = fmt.Sprintf("₦%s loaded successfully via %s", amount.String(), method)
	h.render(w, "load_wallet.html", data)
}

func (h *Handler) BalanceForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "balance.html", h.balanceData(r, ""))
}

func (h *Handler) CheckBalance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "balance.html", h.balanceData(r, "Bad request."))
		return
	}
	userID := r.FormValue("user_id")
	balance, err := h.service.GetBalance(r.Context(), userID)
	if err != nil {
		h.render(w, "balance.html", h.balanceData(r, "Balance lookup failed."))
		return
	}

	data := h.balanceData(r, "")
	data.UserID = userID
	data.Balance = balance.String()
	h.render(w, "balance.html", data)
}

func (h *Handler) BuyTicketForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "buy_ticket.html", h.buyData(r, ""))
}

func (h *Handler) BuyTicket(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "buy_ticket.html", h.buyData(r, "Bad request."))
		return
	}
	ticketType, err := models.ParseTicketType(r.FormValue("ticket_type"))
	if err != nil {
		h.render(w, "buy_ticket.html", h.buyData(r, "Unknown ticket type."))
		return
	}

	buyerID := r.FormValue("user_id")
	ticket, err := h.service.PurchaseTicket(r.Context(), buyerID, ticketType, r.FormValue("terminal"))
	if err != nil {
		h.render(w, "buy_ticket.html", h.buyData(r, h.userMessage(err, "Purchase failed.")))
		return
	}

	data := h.buyData(r, "")
	data.Success = "Ticket issued successfully"
	data.Ticket = ticket
	if history, err := h.service.GetTicketHistory(r.Context(), buyerID); err == nil {
		data.Tickets = history
	}
	h.render(w, "buy_ticket.html", data)
}

func (h *Handler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	ticketID := mux.Vars(r)["ticket_id"]
	path := filepath.Join(h.qrDir, ticketID+".png")
	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ticketID+".png"))
	}
	http.ServeFile(w, r, path)
}

// userMessage maps service sentinels to screen copy; anything unexpected
// gets the fallback.
func (h *Handler) userMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, pkgerrors.ErrInsufficientFunds):
		return "Insufficient wallet balance"
	case errors.Is(err, pkgerrors.ErrInvalidAmount):
		return "Amount must be positive."
	case errors.Is(err, pkgerrors.ErrUserNotFound):
		return "User not found."
	default:
		slog.Error("operation failed", "error", err)
		return fallback
	}
}

func (h *Handler) registerData(errMsg string) screenData {
	return screenData{
		Title: "User Registration",
		Roles: models.Roles(),
		Error: errMsg,
	}
}

func (h *Handler) walletData(r *http.Request, errMsg string) screenData {
	data := screenData{
		Title:   "Wallet Funding",
		Methods: models.FundingMethods(),
		Error:   errMsg,
	}
	data.UserIDs, data.Warning = h.userIDs(r)
	return data
}

func (h *Handler) balanceData(r *http.Request, errMsg string) screenData {
	data := screenData{
		Title: "Wallet Balance",
		Error: errMsg,
	}
	data.UserIDs, data.Warning = h.userIDs(r)
	return data
}

func (h *Handler) buyData(r *http.Request, errMsg string) screenData {
	data := screenData{
		Title: "Purchase Ticket",
		Error: errMsg,
	}
	for _, t := range models.TicketTypes() {
		data.TicketTypes = append(data.TicketTypes, t.Label())
	}
	data.UserIDs, data.Warning = h.userIDs(r)
	return data
}

func (h *Handler) userIDs(r *http.Request) ([]string, string) {
	ids, err := h.service.ListUserIDs(r.Context())
	if err != nil {
		slog.Error("failed to list user IDs", "error", err)
		return nil, "Failed to load users."
	}
	if len(ids) == 0 {
		return nil, noUsersWarning
	}
	return ids, ""
}
