package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"go-baki-pos/internal/command"
	"go-baki-pos/internal/model"
	"go-baki-pos/internal/repository"
	"go-baki-pos/pkg/bangla"

	"github.com/google/uuid"
)

var ErrEmptyCommand = errors.New("please enter or speak a command")

const recentCommandLimit = 4

// Notifier receives a JSON payload after every processed command.
// *ws.Hub satisfies it.
type Notifier interface {
	Publish(msg []byte)
}

type LedgerService interface {
	ProcessCommand(ctx context.Context, utterance string) (*model.Transaction, error)
	RecentCommands() []string
}

type ledgerService struct {
	store    *repository.Store
	notifier Notifier
	now      func() time.Time

	mu     sync.Mutex
	recent []string
}

type LedgerOption func(*ledgerService)

// WithClock overrides time.Now for timestamps
func WithClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) { s.now = now }
}

func NewLedgerService(store *repository.Store, notifier Notifier, opts ...LedgerOption) LedgerService {
	s := &ledgerService{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessCommand classifies one utterance, applies it to the store and
// returns the transaction now at the head of the feed. Every non-empty
// utterance produces exactly one transaction, matched or not.
func (s *ledgerService) ProcessCommand(ctx context.Context, utterance string) (*model.Transaction, error) {
	// 1. Reject empty submissions before classification
	if strings.TrimSpace(utterance) == "" {
		return nil, ErrEmptyCommand
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Classify without touching the store
	cmd := command.Classify(utterance)

	// 3. Apply under the store's write lock
	var txn model.Transaction
	err := s.store.Update(func(tx *repository.Tx) error {
		txn = s.apply(tx, cmd)
		tx.PrependTransaction(txn)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.remember(utterance)

	// 4. Push the update to live views
	s.broadcast(txn)

	return &txn, nil
}

func (s *ledgerService) apply(tx *repository.Tx, cmd command.Command) model.Transaction {
	now := s.now()
	txn := model.Transaction{
		ID:          uuid.New(),
		Date:        now,
		Type:        model.TxSale,
		Description: cmd.Utterance(),
	}

	switch c := cmd.(type) {
	case command.CreditGrant:
		customer := tx.FindCustomerByName(c.Customer)
		if customer == nil {
			customer = tx.AddCustomer(model.NewCustomer(c.Customer, now))
		}
		customer.Credit(c.Amount, c.Raw, now)

		txn.Type = model.TxBakiSale
		txn.Amount = c.Amount
		txn.CustomerName = c.Customer
		txn.Description = fmt.Sprintf("%s %s টাকা বাকিতে নিলো", c.Customer, bangla.Itoa(c.Amount))

	case command.Payment:
		if customer := tx.FindCustomerByName(c.Customer); customer != nil {
			customer.Pay(c.Amount, c.Raw, now)
		} else {
			// Still recorded in the feed; nobody's balance moves.
			log.Printf("Warning: payment of %d from unknown customer %q recorded without ledger entry", c.Amount, c.Customer)
		}

		txn.Type = model.TxBakiPayment
		txn.Amount = c.Amount
		txn.CustomerName = c.Customer
		txn.Description = fmt.Sprintf("%s %s টাকা পরিশোধ করলো", c.Customer, bangla.Itoa(c.Amount))

	case command.CashSale:
		bnName := command.BengaliName(tx.ProductSnapshot(), c.Product)
		s.adjustMatching(tx, c.Product, -c.Quantity, now)

		txn.Type = model.TxSale
		txn.ProductName = c.Product
		txn.Quantity = c.Quantity
		txn.Amount = c.Amount
		txn.Description = fmt.Sprintf("%s %s %s বিক্রি হলো %s টাকায়",
			bnName, bangla.FormatFloat(c.Quantity), c.Unit.Bengali(), bangla.Itoa(c.Amount))

	case command.StockIn:
		bnName := command.BengaliName(tx.ProductSnapshot(), c.Product)
		s.adjustMatching(tx, c.Product, c.Quantity, now)

		txn.Type = model.TxStockIn
		txn.ProductName = c.Product
		txn.Quantity = c.Quantity
		txn.Amount = 0
		txn.Description = fmt.Sprintf("%s %s %s স্টক এসেছে",
			bnName, bangla.FormatFloat(c.Quantity), c.Unit.Bengali())

	case command.Unclassified:
		// generic sale, zero amount, raw utterance as description

	default:
		panic(fmt.Sprintf("service: unhandled command %T", cmd))
	}

	return txn
}

// adjustMatching moves stock on every product the token matches, not just the
// first one.
func (s *ledgerService) adjustMatching(tx *repository.Tx, token string, delta float64, at time.Time) {
	matched := 0
	for _, p := range tx.Products() {
		if command.Matches(*p, token) {
			p.AdjustStock(delta, at)
			matched++
		}
	}
	if matched == 0 {
		log.Printf("Warning: product %q matched nothing, stock unchanged", token)
	}
}

func (s *ledgerService) remember(utterance string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, recentCommandLimit)
	next = append(next, utterance)
	for _, c := range s.recent {
		if len(next) == recentCommandLimit {
			break
		}
		if c != utterance {
			next = append(next, c)
		}
	}
	s.recent = next
}

// RecentCommands returns up to four distinct utterances, newest first.
func (s *ledgerService) RecentCommands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.recent...)
}

func (s *ledgerService) broadcast(txn model.Transaction) {
	if s.notifier == nil {
		return
	}
	payload := map[string]interface{}{
		"type":        "store_update",
		"action":      "command_processed",
		"transaction": txn,
		"message":     txn.Description,
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Warning: failed to encode store update: %v", err)
		return
	}
	s.notifier.Publish(msg)
}
