// Package cli implements the interactive console menu. It collects raw
// field values, converts them to typed entities, invokes the usecase
// services and renders results as text. It never touches store internals.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kavehsh/shopping_system/internal/domain"
	"github.com/kavehsh/shopping_system/internal/usecase/customer"
	"github.com/kavehsh/shopping_system/internal/usecase/dealer"
	"github.com/kavehsh/shopping_system/internal/usecase/product"
	"github.com/kavehsh/shopping_system/internal/usecase/purchase"
)

// errInvalidEntries signals a parse failure in user input; rendered as a
// generic message like any other malformed entry
var errInvalidEntries = errors.New("invalid entries")

const helpMessage = `Please enter a number to execute the corresponding command
1: Add a Product
2: Remove a Product
3: Add a Customer
4: Remove a Customer
5: Add a Dealer
6: Remove a Dealer
7: Buy a Product by a Customer
8: Calculate and display the total purchase price of a customer
9: Get Customers list of a specific Product
10: Get Products list of a specific Dealer
11: Get number of sales of a Product
12: Get list of Products purchased by a Customer
13: Get list of Dealers and their total sales
14: Quit`

const exitOption = 14

// CLI drives the interactive console menu
type CLI struct {
	customers *customer.Service
	products  *product.Service
	dealers   *dealer.Service
	purchases *purchase.Service

	in  *bufio.Scanner
	out io.Writer
}

// New creates a CLI reading commands from in and writing to out
func New(
	customers *customer.Service,
	products *product.Service,
	dealers *dealer.Service,
	purchases *purchase.Service,
	in io.Reader,
	out io.Writer,
) *CLI {
	return &CLI{
		customers: customers,
		products:  products,
		dealers:   dealers,
		purchases: purchases,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run executes the menu loop until the user quits or input is exhausted
func (c *CLI) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out, helpMessage)
		fmt.Fprint(c.out, "~ ")

		line, ok := c.readLine()
		if !ok {
			return nil
		}

		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || option < 1 || option > exitOption {
			fmt.Fprintln(c.out, "Invalid option")
			continue
		}

		if option == exitOption {
			fmt.Fprintln(c.out, "Exiting ...")
			return nil
		}

		c.dispatch(ctx, option)
	}
}

func (c *CLI) dispatch(ctx context.Context, option int) {
	switch option {
	case 1:
		c.addProduct(ctx)
	case 2:
		c.removeProduct(ctx)
	case 3:
		c.addCustomer(ctx)
	case 4:
		c.removeCustomer(ctx)
	case 5:
		c.addDealer(ctx)
	case 6:
		c.removeDealer(ctx)
	case 7:
		c.buyProduct(ctx)
	case 8:
		c.totalPurchase(ctx)
	case 9:
		c.customersOfProduct(ctx)
	case 10:
		c.productsOfDealer(ctx)
	case 11:
		c.productSalesNumber(ctx)
	case 12:
		c.customerPurchasedProducts(ctx)
	case 13:
		c.dealersAndSales(ctx)
	}
}

func (c *CLI) addProduct(ctx context.Context) {
	name := c.prompt("Name")
	code, err := c.promptInt("Code")
	if err != nil {
		c.report(err)
		return
	}
	price, err := c.promptFloat("Price")
	if err != nil {
		c.report(err)
		return
	}
	brand := c.prompt("Brand")
	weight, err := c.promptFloat("Weight")
	if err != nil {
		c.report(err)
		return
	}

	prod, err := domain.NewProduct(name, code, price, brand, weight)
	if err != nil {
		c.report(err)
		return
	}
	if err := c.products.Create(ctx, prod); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Product has been successfully added")
}

func (c *CLI) removeProduct(ctx context.Context) {
	code, err := c.promptInt("Product Code")
	if err != nil {
		c.report(err)
		return
	}
	if err := c.products.Remove(ctx, code); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Done")
}

func (c *CLI) addCustomer(ctx context.Context) {
	firstName := c.prompt("First Name")
	lastName := c.prompt("Last Name")
	id, err := c.promptInt("ID")
	if err != nil {
		c.report(err)
		return
	}
	nationalCode, err := c.promptInt64("National Code")
	if err != nil {
		c.report(err)
		return
	}
	gender, err := domain.ParseGender(c.prompt("Gender"))
	if err != nil {
		c.report(err)
		return
	}
	birthYear, err := c.promptInt("Birth Year")
	if err != nil {
		c.report(err)
		return
	}
	province := c.prompt("Province")
	city := c.prompt("City")

	cust := &domain.Customer{
		CustomerID:   id,
		FirstName:    firstName,
		LastName:     lastName,
		NationalCode: nationalCode,
		Gender:       gender,
		BirthYear:    birthYear,
		Province:     province,
		City:         city,
	}
	if err := c.customers.Register(ctx, cust); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Customer has been successfully added")
}

func (c *CLI) removeCustomer(ctx context.Context) {
	id, err := c.promptInt("Customer's ID")
	if err != nil {
		c.report(err)
		return
	}
	if err := c.customers.Remove(ctx, id); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Done")
}

func (c *CLI) addDealer(ctx context.Context) {
	name := c.prompt("Name")
	establishedYear, err := c.promptInt("Established Year")
	if err != nil {
		c.report(err)
		return
	}
	code, err := c.promptInt("Code")
	if err != nil {
		c.report(err)
		return
	}
	ownerFirstName := c.prompt("Owner First Name")
	ownerLastName := c.prompt("Owner Last Name")
	province := c.prompt("Province")
	city := c.prompt("City")

	d := &domain.Dealer{
		Code:            code,
		Name:            name,
		EstablishedYear: establishedYear,
		OwnerFirstName:  ownerFirstName,
		OwnerLastName:   ownerLastName,
		Province:        province,
		City:            city,
	}
	if err := c.dealers.Register(ctx, d); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Dealer has been successfully added")
}

func (c *CLI) removeDealer(ctx context.Context) {
	code, err := c.promptInt("Dealer's Code")
	if err != nil {
		c.report(err)
		return
	}
	if err := c.dealers.Remove(ctx, code); err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Done")
}

func (c *CLI) buyProduct(ctx context.Context) {
	customerID, err := c.promptInt("Customer ID")
	if err != nil {
		c.report(err)
		return
	}
	productCode, err := c.promptInt("Product Code")
	if err != nil {
		c.report(err)
		return
	}
	dealerCode, err := c.promptInt("Dealer Code")
	if err != nil {
		c.report(err)
		return
	}
	quantity, err := c.promptInt("Count")
	if err != nil {
		c.report(err)
		return
	}

	if _, err := c.purchases.Buy(ctx, customerID, productCode, dealerCode, quantity, time.Time{}); err != nil {
		// A buy against an unknown customer, product or dealer reads as a
		// bad entry, not a bad ID
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintln(c.out, "Invalid entries")
			return
		}
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Product has been successfully bought")
}

func (c *CLI) totalPurchase(ctx context.Context) {
	id, err := c.promptInt("Customer's ID")
	if err != nil {
		c.report(err)
		return
	}
	total, err := c.purchases.TotalPurchaseAmount(ctx, id)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Total => %g\n", total)
}

func (c *CLI) customersOfProduct(ctx context.Context) {
	code, err := c.promptInt("Product Code")
	if err != nil {
		c.report(err)
		return
	}
	customers, err := c.purchases.ProductCustomers(ctx, code)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Product customers:")
	for _, cust := range customers {
		fmt.Fprintf(c.out, "~ %s\n", cust.FullName())
	}
}

func (c *CLI) productsOfDealer(ctx context.Context) {
	code, err := c.promptInt("Dealer's Code")
	if err != nil {
		c.report(err)
		return
	}
	products, err := c.purchases.DealerProducts(ctx, code)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Dealer products:")
	for _, prod := range products {
		fmt.Fprintf(c.out, "> %s\n", prod.Name)
	}
}

func (c *CLI) productSalesNumber(ctx context.Context) {
	code, err := c.promptInt("Product Code")
	if err != nil {
		c.report(err)
		return
	}
	total, err := c.purchases.ProductTotalSales(ctx, code)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintf(c.out, "Product sales number: %d\n", total)
}

func (c *CLI) customerPurchasedProducts(ctx context.Context) {
	id, err := c.promptInt("Customer's ID")
	if err != nil {
		c.report(err)
		return
	}
	products, err := c.purchases.PurchasedProducts(ctx, id)
	if err != nil {
		c.report(err)
		return
	}
	fmt.Fprintln(c.out, "Customer's Products:")
	for _, prod := range products {
		fmt.Fprintf(c.out, "> %s (Code: %d)\n", prod.Name, prod.Code)
	}
}

func (c *CLI) dealersAndSales(ctx context.Context) {
	report, err := c.purchases.DealerTotalSales(ctx)
	if err != nil {
		c.report(err)
		return
	}
	dealers, err := c.dealers.List(ctx)
	if err != nil {
		c.report(err)
		return
	}
	sort.Slice(dealers, func(i, j int) bool { return dealers[i].Code < dealers[j].Code })

	fmt.Fprintln(c.out, "Dealers and Total Sales:")
	for _, d := range dealers {
		fmt.Fprintf(c.out, "> %s: %d\n", d.Name, report[d.Code])
	}
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *CLI) prompt(name string) string {
	fmt.Fprintf(c.out, "Enter %s: ", name)
	line, _ := c.readLine()
	return strings.TrimSpace(line)
}

func (c *CLI) promptInt(name string) (int, error) {
	value, err := strconv.Atoi(c.prompt(name))
	if err != nil {
		return 0, errInvalidEntries
	}
	return value, nil
}

func (c *CLI) promptInt64(name string) (int64, error) {
	value, err := strconv.ParseInt(c.prompt(name), 10, 64)
	if err != nil {
		return 0, errInvalidEntries
	}
	return value, nil
}

func (c *CLI) promptFloat(name string) (float64, error) {
	value, err := strconv.ParseFloat(c.prompt(name), 64)
	if err != nil {
		return 0, errInvalidEntries
	}
	return value, nil
}

// report renders a failure without crashing the loop
func (c *CLI) report(err error) {
	switch {
	case errors.Is(err, errInvalidEntries):
		fmt.Fprintln(c.out, "Invalid entries")
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(c.out, "Invalid ID")
	default:
		fmt.Fprintln(c.out, err.Error())
	}
}
