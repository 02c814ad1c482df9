// seed genera un script SQL con datos de demostración para el panel:
// un usuario admin, categorías, proveedores, productos y movimientos de
// stock iniciales.
//
// Uso: go run ./cmd/seed [password-admin]
// Por defecto la contraseña del admin es "changeme123".
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type demoProduct struct {
	name      string
	sku       string
	category  string
	supplier  string
	unitPrice string
	costPrice string
	qty       int
	minLevel  int
}

var demoCategories = []struct{ name, description string }{
	{"Electrónica", "Dispositivos y accesorios electrónicos"},
	{"Oficina", "Papelería y suministros de oficina"},
	{"Limpieza", "Productos de aseo y limpieza"},
}

var demoSuppliers = []struct{ name, contact, email, phone string }{
	{"Distribuidora Andina", "Laura Pérez", "ventas@andina.example", "+57 301 555 0101"},
	{"Suministros del Norte", "Carlos Ruiz", "pedidos@norte.example", "+57 310 555 0202"},
}

var demoProducts = []demoProduct{
	{"Teclado mecánico", "ELEC-001", "Electrónica", "Distribuidora Andina", "185000", "120000", 24, 5},
	{"Mouse inalámbrico", "ELEC-002", "Electrónica", "Distribuidora Andina", "95000", "60000", 40, 10},
	{"Monitor 24\"", "ELEC-003", "Electrónica", "Distribuidora Andina", "780000", "590000", 3, 5},
	{"Resma papel carta", "OF-001", "Oficina", "Suministros del Norte", "18500", "12000", 120, 30},
	{"Detergente industrial 5L", "LIMP-001", "Limpieza", "Suministros del Norte", "42000", "28000", 8, 10},
}

func main() {
	adminPassword := "changeme123"
	if len(os.Args) > 1 {
		adminPassword = os.Args[1]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración para el panel de inventario\n")
	out.WriteString("-- Generado por cmd/seed; no usar en producción\n\n")

	// 1. Usuario admin
	out.WriteString("-- 1. Usuario administrador\n")
	fmt.Fprintf(out, "INSERT INTO users (id, email, password_hash, name, role, status)\n")
	fmt.Fprintf(out, "VALUES ('%s', 'admin@keeper.local', '%s', 'Administrador', 'admin', 'active')\n",
		uuid.New(), escapeSQL(string(hash)))
	out.WriteString("ON CONFLICT (email) DO NOTHING;\n\n")

	// 2. Categorías
	out.WriteString("-- 2. Categorías\n")
	categoryIDs := make(map[string]uuid.UUID, len(demoCategories))
	for _, c := range demoCategories {
		id := uuid.New()
		categoryIDs[c.name] = id
		fmt.Fprintf(out, "INSERT INTO categories (id, name, description) VALUES ('%s', '%s', '%s');\n",
			id, escapeSQL(c.name), escapeSQL(c.description))
	}
	out.WriteString("\n")

	// 3. Proveedores
	out.WriteString("-- 3. Proveedores\n")
	supplierIDs := make(map[string]uuid.UUID, len(demoSuppliers))
	for _, s := range demoSuppliers {
		id := uuid.New()
		supplierIDs[s.name] = id
		fmt.Fprintf(out, "INSERT INTO suppliers (id, name, contact_person, email, phone) VALUES ('%s', '%s', '%s', '%s', '%s');\n",
			id, escapeSQL(s.name), escapeSQL(s.contact), escapeSQL(s.email), escapeSQL(s.phone))
	}
	out.WriteString("\n")

	// 4. Productos, con un movimiento "in" inicial por cada uno
	out.WriteString("-- 4. Productos y stock inicial\n")
	for _, p := range demoProducts {
		id := uuid.New()
		cost := decimal.RequireFromString(p.costPrice)
		fmt.Fprintf(out, "INSERT INTO products (id, name, sku, category_id, supplier_id, unit_price, cost_price, quantity_in_stock, minimum_stock_level, status)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', %s, %s, %d, %d, 'active');\n",
			id, escapeSQL(p.name), escapeSQL(p.sku),
			categoryIDs[p.category], supplierIDs[p.supplier],
			p.unitPrice, p.costPrice, p.qty, p.minLevel)
		total := cost.Mul(decimal.NewFromInt(int64(p.qty)))
		fmt.Fprintf(out, "INSERT INTO stock_transactions (id, product_id, transaction_type, quantity, unit_price, total_value, notes)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', 'in', %d, %s, %s, 'Carga inicial');\n\n",
			uuid.New(), id, p.qty, p.costPrice, total)
	}

	fmt.Printf("Generado %s: %d categorías, %d proveedores, %d productos\n",
		outPath, len(demoCategories), len(demoSuppliers), len(demoProducts))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
