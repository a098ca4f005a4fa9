package cart

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/faizramdhannn/Bazzar-2026/internal/models"
)

// State is the cashier flow position: a customer name must be committed and
// scanning explicitly enabled before SKU tokens are accepted.
type State int

const (
	StateNoCustomer State = iota
	StateCustomerEntered
	StateScanning
)

var (
	ErrNotScanning = errors.New("scanning not enabled")
	ErrSKUNotFound = errors.New("SKU not found")
)

// Line is one cart entry. Cap is the catalog quantity observed when the line
// was first scanned; available stock is derived from it without re-querying
// the backend mid-cart.
type Line struct {
	SKU      string
	Name     string
	Price    float64
	Quantity int
	Cap      int
}

// Cart tracks an in-progress order against a cached catalog snapshot. The
// snapshot is advisory only; the server re-validates at submit time.
type Cart struct {
	state        State
	customerName string
	lines        []Line
	discount     float64
	note         string
	catalog      []models.MasterItem
}

// New creates a cart over a catalog snapshot
func New(catalog []models.MasterItem) *Cart {
	return &Cart{catalog: catalog}
}

// SetCatalog replaces the cached snapshot, e.g. after a successful submit.
func (c *Cart) SetCatalog(catalog []models.MasterItem) {
	c.catalog = catalog
}

func (c *Cart) State() State         { return c.state }
func (c *Cart) CustomerName() string { return c.customerName }
func (c *Cart) Lines() []Line        { return c.lines }
func (c *Cart) Discount() float64    { return c.discount }
func (c *Cart) Note() string         { return c.note }
func (c *Cart) SetNote(note string)  { c.note = note }

// SetCustomer commits a customer name. An empty trimmed name is ignored and
// the state does not advance.
func (c *Cart) SetCustomer(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	c.customerName = name
	if c.state == StateNoCustomer {
		c.state = StateCustomerEntered
	}
	return true
}

// EnableScanning arms the scan loop; the UI triggers this on enter in the
// name field.
func (c *Cart) EnableScanning() bool {
	if c.state != StateCustomerEntered {
		return false
	}
	c.state = StateScanning
	return true
}

// AvailableStock is the catalog quantity minus what the cart already holds.
func (c *Cart) AvailableStock(sku string) int {
	if line := c.findLine(sku); line != nil {
		return line.Cap - line.Quantity
	}
	if item := c.findCatalog(sku); item != nil {
		return item.Quantity
	}
	return 0
}

// Scan handles one submitted SKU token. An empty token is a no-op. A token
// already in the cart bumps that line by one if stock remains; a new token is
// looked up in the snapshot and inserted with quantity one.
func (c *Cart) Scan(token string) error {
	if c.state != StateScanning {
		return ErrNotScanning
	}

	sku := strings.ToUpper(strings.TrimSpace(token))
	if sku == "" {
		return nil
	}

	if line := c.findLine(sku); line != nil {
		if c.AvailableStock(sku) <= 0 {
			return fmt.Errorf("out of stock for %s", line.Name)
		}
		line.Quantity++
		return nil
	}

	item := c.findCatalog(sku)
	if item == nil {
		return ErrSKUNotFound
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("out of stock for %s", item.Name)
	}

	c.lines = append(c.lines, Line{
		SKU:      item.SKU,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		Cap:      item.Quantity,
	})
	return nil
}

// Adjust bumps a line's quantity by delta. Increments re-check available
// stock; a quantity dropping to zero or below removes the line.
func (c *Cart) Adjust(index, delta int) error {
	if index < 0 || index >= len(c.lines) {
		return fmt.Errorf("no cart line %d", index)
	}

	line := &c.lines[index]
	if delta > 0 && c.AvailableStock(line.SKU) <= 0 {
		return fmt.Errorf("out of stock for %s", line.Name)
	}

	line.Quantity += delta
	if line.Quantity <= 0 {
		c.Remove(index)
	}
	return nil
}

// Remove deletes a cart line
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
}

var nonDigits = regexp.MustCompile(`\D`)

// SetDiscountText coerces free-text discount entry to a non-negative integer
// amount: non-digit characters are stripped, an empty result means zero.
func (c *Cart) SetDiscountText(text string) {
	digits := nonDigits.ReplaceAllString(text, "")
	v, err := strconv.Atoi(digits)
	if err != nil {
		v = 0
	}
	c.discount = float64(v)
}

// SubTotal sums price times quantity over all lines
func (c *Cart) SubTotal() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

// Total is the subtotal less the discount, floored at zero.
func (c *Cart) Total() float64 {
	total := c.SubTotal() - c.discount
	if total < 0 {
		return 0
	}
	return total
}

// OrderLines converts the cart to submission lines
func (c *Cart) OrderLines() []models.OrderLine {
	lines := make([]models.OrderLine, 0, len(c.lines))
	for _, l := range c.lines {
		lines = append(lines, models.OrderLine{
			SKU:      l.SKU,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}
	return lines
}

// Reset clears everything after a successful submission. The caller supplies
// a fresh catalog snapshot so subsequent scans see post-decrement quantities.
func (c *Cart) Reset(catalog []models.MasterItem) {
	c.state = StateNoCustomer
	c.customerName = ""
	c.lines = nil
	c.discount = 0
	c.note = ""
	c.catalog = catalog
}

func (c *Cart) findLine(sku string) *Line {
	for i := range c.lines {
		if strings.EqualFold(c.lines[i].SKU, sku) {
			return &c.lines[i]
		}
	}
	return nil
}

func (c *Cart) findCatalog(sku string) *models.MasterItem {
	for i := range c.catalog {
		if strings.EqualFold(c.catalog[i].SKU, sku) {
			return &c.catalog[i]
		}
	}
	return nil
}
