package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/faizramdhannn/Bazzar-2026/internal/cart"
	"github.com/faizramdhannn/Bazzar-2026/internal/models"
	"github.com/faizramdhannn/Bazzar-2026/internal/service"
)

// Terminal cashier client: loads the catalog and an order identifier once,
// then drives the cart from stdin. Stock shown between scans is derived from
// the local snapshot; the server re-validates at submit time.

type client struct {
	base string
	http *http.Client
}

type masterResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Items   []models.MasterItem `json:"items"`
}

type orderIDResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *client) fetchCatalog() ([]models.MasterItem, error) {
	resp, err := c.http.Get(c.base + "/master")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body masterResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, fmt.Errorf("load catalog: %s", body.Message)
	}
	return body.Items, nil
}

func (c *client) fetchOrderID() (string, error) {
	resp, err := c.http.Get(c.base + "/order")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body orderIDResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if !body.Success {
		return "", fmt.Errorf("fetch order ID: %s", body.Message)
	}
	return body.OrderID, nil
}

func (c *client) submit(req *service.SubmitOrderRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	resp, err := c.http.Post(c.base+"/order", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}
	if !body.Success {
		return fmt.Errorf("%s", body.Message)
	}
	return nil
}

func main() {
	server := flag.String("server", "http://localhost:8080", "POS server base URL")
	flag.Parse()

	api := &client{base: strings.TrimRight(*server, "/"), http: http.DefaultClient}

	fmt.Println("Loading catalog...")
	catalog, err := api.fetchCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	orderID, err := api.fetchOrderID()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d items loaded, next order %s\n", len(catalog), orderID)

	c := cart.New(catalog)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		switch c.State() {
		case cart.StateNoCustomer:
			fmt.Print("customer name: ")
		default:
			fmt.Printf("[%s] %s> ", orderID, c.CustomerName())
		}

		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		if c.State() == cart.StateNoCustomer {
			// enter in the name field commits the name and arms scanning
			if c.SetCustomer(input) {
				c.EnableScanning()
			}
			continue
		}

		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := runCommand(c, api, &orderID, input); quit {
				return
			}
			continue
		}

		if err := c.Scan(input); err != nil {
			fmt.Printf("  !! %v\n", err)
			continue
		}
		printCart(c)
	}
}

func runCommand(c *cart.Cart, api *client, orderID *string, input string) bool {
	cmd, arg, _ := strings.Cut(input[1:], " ")

	switch cmd {
	case "cart":
		printCart(c)
	case "+", "-":
		index, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			fmt.Println("  usage: /+ N or /- N (line number)")
			return false
		}
		delta := 1
		if cmd == "-" {
			delta = -1
		}
		if err := c.Adjust(index-1, delta); err != nil {
			fmt.Printf("  !! %v\n", err)
			return false
		}
		printCart(c)
	case "discount":
		c.SetDiscountText(arg)
		printCart(c)
	case "note":
		c.SetNote(arg)
	case "pay", "unpaid":
		status := models.OrderStatusUnpaid
		if cmd == "pay" {
			status = models.OrderStatusPaid
		}
		checkout(c, api, orderID, status)
	case "cancel":
		catalog, err := api.fetchCatalog()
		if err != nil {
			fmt.Printf("  !! %v\n", err)
			return false
		}
		c.Reset(catalog)
		fmt.Println("  cart cleared")
	case "quit":
		return true
	default:
		fmt.Println("  commands: /cart /+ N /- N /discount AMOUNT /note TEXT /pay /unpaid /cancel /quit")
	}
	return false
}

func checkout(c *cart.Cart, api *client, orderID *string, status string) {
	if len(c.Lines()) == 0 {
		fmt.Println("  !! cart is empty")
		return
	}

	req := &service.SubmitOrderRequest{
		OrderID:      *orderID,
		CustomerName: c.CustomerName(),
		Items:        c.OrderLines(),
		SubTotal:     c.SubTotal(),
		Discount:     c.Discount(),
		Total:        c.Total(),
		Note:         c.Note(),
		Status:       status,
	}

	fmt.Println("  saving order...")
	if err := api.submit(req); err != nil {
		fmt.Printf("  !! %v\n", err)
		return
	}
	fmt.Printf("  order %s saved (%s, total %.0f)\n", *orderID, status, c.Total())

	// re-fetch so the next cart sees post-decrement quantities
	catalog, err := api.fetchCatalog()
	if err != nil {
		fmt.Printf("  !! refresh catalog: %v\n", err)
		catalog = nil
	}
	next, err := api.fetchOrderID()
	if err != nil {
		fmt.Printf("  !! refresh order ID: %v\n", err)
	} else {
		*orderID = next
	}
	c.Reset(catalog)
}

func printCart(c *cart.Cart) {
	for i, line := range c.Lines() {
		fmt.Printf("  %d. %-20s x%-3d %10.0f\n", i+1, line.Name, line.Quantity, line.Price*float64(line.Quantity))
	}
	if c.Discount() > 0 {
		fmt.Printf("     subtotal %.0f, discount %.0f\n", c.SubTotal(), c.Discount())
	}
	fmt.Printf("     total %.0f\n", c.Total())
}
