package sourcefile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

// Fixed file names the source system drops into the exchange directory.
const (
	CustomersFile = "customers.csv"
	ProductsFile  = "products.csv"
	StoresFile    = "stores.csv"
	SalesFile     = "sales.csv"
)

// ErrNoSalesFile signals an exchange directory without a sales export; the
// scheduler treats it as "nothing to load", not as a failure.
var ErrNoSalesFile = errors.New("no sales file in source directory")

// Reader assembles a BatchInput from the CSV exports. Dimension files are
// optional per run (the source resends full snapshots on change); the sales
// file is what makes a run worth starting.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) ReadBatch(dir string) (*domain.BatchInput, error) {
	salesPath := filepath.Join(dir, SalesFile)
	if _, err := os.Stat(salesPath); os.IsNotExist(err) {
		return nil, ErrNoSalesFile
	}

	input := &domain.BatchInput{}
	var err error

	if input.Snapshot.Customers, err = r.readCustomers(filepath.Join(dir, CustomersFile)); err != nil {
		return nil, err
	}
	if input.Snapshot.Products, err = r.readProducts(filepath.Join(dir, ProductsFile)); err != nil {
		return nil, err
	}
	if input.Snapshot.Stores, err = r.readStores(filepath.Join(dir, StoresFile)); err != nil {
		return nil, err
	}
	if input.Sales, err = r.readSales(salesPath); err != nil {
		return nil, err
	}

	return input, nil
}

// Archive moves the consumed sales export out of the exchange directory so
// the next scheduled run cannot pick it up again. It complements, but does
// not replace, the staged-row watermark inside the warehouse.
func (r *Reader) Archive(dir, archiveDir string) error {
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return errors.Wrap(err, "creating archive directory")
	}

	stamp := time.Now().UTC().Format("20060102T150405")
	src := filepath.Join(dir, SalesFile)
	dst := filepath.Join(archiveDir, fmt.Sprintf("sales-%s.csv", stamp))

	if err := os.Rename(src, dst); err != nil {
		return errors.Wrap(err, "archiving sales file")
	}

	return nil
}

func (r *Reader) readCustomers(path string) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0)
	err := readRows(path, []string{"CustomerID", "CustomerName", "Region"}, func(line int, get func(string) string) error {
		customers = append(customers, domain.Customer{
			CustomerID:   get("CustomerID"),
			CustomerName: get("CustomerName"),
			Region:       get("Region"),
		})
		return nil
	})
	return customers, err
}

func (r *Reader) readProducts(path string) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	err := readRows(path, []string{"ProductID", "ProductName", "Category", "Price"}, func(line int, get func(string) string) error {
		price, err := strconv.ParseFloat(get("Price"), 64)
		if err != nil {
			return errors.Wrapf(err, "%s line %d: invalid price", filepath.Base(path), line)
		}
		products = append(products, domain.Product{
			ProductID:   get("ProductID"),
			ProductName: get("ProductName"),
			Category:    get("Category"),
			Price:       price,
		})
		return nil
	})
	return products, err
}

func (r *Reader) readStores(path string) ([]domain.Store, error) {
	stores := make([]domain.Store, 0)
	err := readRows(path, []string{"StoreID", "StoreName", "Location"}, func(line int, get func(string) string) error {
		stores = append(stores, domain.Store{
			StoreID:   get("StoreID"),
			StoreName: get("StoreName"),
			Location:  get("Location"),
		})
		return nil
	})
	return stores, err
}

func (r *Reader) readSales(path string) ([]domain.SaleRecord, error) {
	sales := make([]domain.SaleRecord, 0)
	err := readRows(path, []string{"CustomerID", "ProductID", "StoreID", "DateValue", "Quantity"}, func(line int, get func(string) string) error {
		quantity, err := strconv.Atoi(get("Quantity"))
		if err != nil {
			return errors.Wrapf(err, "%s line %d: invalid quantity", filepath.Base(path), line)
		}
		sales = append(sales, domain.SaleRecord{
			CustomerID: get("CustomerID"),
			ProductID:  get("ProductID"),
			StoreID:    get("StoreID"),
			DateValue:  get("DateValue"),
			Quantity:   quantity,
		})
		return nil
	})
	return sales, err
}

// readRows streams a headed CSV file, resolving columns by header name. An
// absent file yields zero rows (dimension snapshots are optional per run).
func readRows(path string, required []string, visit func(line int, get func(string) string) error) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "opening %s", filepath.Base(path))
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.Wrapf(err, "reading %s header", filepath.Base(path))
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return errors.Errorf("%s: missing column %q", filepath.Base(path), name)
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading %s line %d", filepath.Base(path), line+1)
		}
		line++

		get := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		if err := visit(line, get); err != nil {
			return err
		}
	}
}
