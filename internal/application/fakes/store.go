// Package fakes implementa los puertos de repositorio en memoria para los
// tests de los casos de uso. El TxRunner toma un snapshot del estado al
// empezar y lo restaura si el callback falla, imitando el rollback real.
package fakes

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// Store estado compartido de todos los repos fake.
type Store struct {
	mu sync.Mutex

	Companies          map[string]entity.Company
	Plans              map[string]entity.Plan
	Users              map[string]entity.User
	Products           map[string]entity.Product
	Inventory          map[string]entity.InventoryRecord // clave companyID+"|"+productID
	Customers          map[string]entity.Customer
	Sales              map[string]entity.Sale
	SaleDetails        []entity.SaleDetail
	Receivables        map[string]entity.Receivable // clave saleID
	Expenses           map[string]entity.Expense
	Proveedoras        map[string]entity.Proveedora
	Consignaciones     map[string]entity.Consignacion
	VentasConsignacion map[string]entity.VentaConsignacion
	Liquidaciones      map[string]entity.Liquidacion
	LiqDetalles        []entity.LiquidacionDetalle
}

// NewStore estado vacío.
func NewStore() *Store {
	return &Store{
		Companies:          map[string]entity.Company{},
		Plans:              map[string]entity.Plan{},
		Users:              map[string]entity.User{},
		Products:           map[string]entity.Product{},
		Inventory:          map[string]entity.InventoryRecord{},
		Customers:          map[string]entity.Customer{},
		Sales:              map[string]entity.Sale{},
		Receivables:        map[string]entity.Receivable{},
		Expenses:           map[string]entity.Expense{},
		Proveedoras:        map[string]entity.Proveedora{},
		Consignaciones:     map[string]entity.Consignacion{},
		VentasConsignacion: map[string]entity.VentaConsignacion{},
		Liquidaciones:      map[string]entity.Liquidacion{},
	}
}

func invKey(companyID, productID string) string { return companyID + "|" + productID }

func (s *Store) snapshot() *Store {
	snap := NewStore()
	for k, v := range s.Companies {
		snap.Companies[k] = v
	}
	for k, v := range s.Plans {
		snap.Plans[k] = v
	}
	for k, v := range s.Users {
		snap.Users[k] = v
	}
	for k, v := range s.Products {
		snap.Products[k] = v
	}
	for k, v := range s.Inventory {
		snap.Inventory[k] = v
	}
	for k, v := range s.Customers {
		snap.Customers[k] = v
	}
	for k, v := range s.Sales {
		snap.Sales[k] = v
	}
	snap.SaleDetails = append(snap.SaleDetails, s.SaleDetails...)
	for k, v := range s.Receivables {
		snap.Receivables[k] = v
	}
	for k, v := range s.Expenses {
		snap.Expenses[k] = v
	}
	for k, v := range s.Proveedoras {
		snap.Proveedoras[k] = v
	}
	for k, v := range s.Consignaciones {
		snap.Consignaciones[k] = v
	}
	for k, v := range s.VentasConsignacion {
		snap.VentasConsignacion[k] = v
	}
	for k, v := range s.Liquidaciones {
		snap.Liquidaciones[k] = v
	}
	snap.LiqDetalles = append(snap.LiqDetalles, s.LiqDetalles...)
	return snap
}

func (s *Store) restore(snap *Store) {
	s.Companies = snap.Companies
	s.Plans = snap.Plans
	s.Users = snap.Users
	s.Products = snap.Products
	s.Inventory = snap.Inventory
	s.Customers = snap.Customers
	s.Sales = snap.Sales
	s.SaleDetails = snap.SaleDetails
	s.Receivables = snap.Receivables
	s.Expenses = snap.Expenses
	s.Proveedoras = snap.Proveedoras
	s.Consignaciones = snap.Consignaciones
	s.VentasConsignacion = snap.VentasConsignacion
	s.Liquidaciones = snap.Liquidaciones
	s.LiqDetalles = snap.LiqDetalles
}

// ── Inventory ─────────────────────────────────────────────────────────────────

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

type InventoryRepo struct{ s *Store }

func NewInventoryRepo(s *Store) *InventoryRepo { return &InventoryRepo{s: s} }

func (r *InventoryRepo) Get(companyID, productID string) (*entity.InventoryRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.Inventory[invKey(companyID, productID)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *InventoryRepo) AdjustStock(companyID, productID string, delta int) (*entity.InventoryRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := invKey(companyID, productID)
	rec, ok := r.s.Inventory[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if rec.Stock+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	rec.Stock += delta
	r.s.Inventory[key] = rec
	return &rec, nil
}

func (r *InventoryRepo) SetPricing(companyID, productID string, upd repository.PricingUpdate) (*entity.InventoryRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := invKey(companyID, productID)
	rec, ok := r.s.Inventory[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.SalePrice != nil {
		rec.SalePrice = *upd.SalePrice
	}
	if upd.PurchasePrice != nil {
		rec.PurchasePrice = *upd.PurchasePrice
	}
	if upd.Stock != nil {
		rec.Stock = *upd.Stock
	}
	r.s.Inventory[key] = rec
	return &rec, nil
}

func (r *InventoryRepo) ListByCompany(companyID string) ([]*repository.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.InventoryItem
	for _, rec := range r.s.Inventory {
		if rec.CompanyID != companyID {
			continue
		}
		out = append(out, &repository.InventoryItem{
			Record:  rec,
			Product: r.s.Products[rec.ProductID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.Name < out[j].Product.Name })
	return out, nil
}

func (r *InventoryRepo) InitForCompany(companyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.Products {
		key := invKey(companyID, p.ID)
		if _, ok := r.s.Inventory[key]; ok {
			continue
		}
		r.s.Inventory[key] = entity.InventoryRecord{
			ID:        key,
			CompanyID: companyID,
			ProductID: p.ID,
		}
	}
	return nil
}

func (r *InventoryRepo) InitForProduct(productID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.Companies {
		key := invKey(c.ID, productID)
		if _, ok := r.s.Inventory[key]; ok {
			continue
		}
		r.s.Inventory[key] = entity.InventoryRecord{
			ID:        key,
			CompanyID: c.ID,
			ProductID: productID,
		}
	}
	return nil
}

// ── Customers ─────────────────────────────────────────────────────────────────

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

type CustomerRepo struct{ s *Store }

func NewCustomerRepo(s *Store) *CustomerRepo { return &CustomerRepo{s: s} }

func (r *CustomerRepo) Create(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Customers[c.ID] = *c
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Customer
	for _, c := range r.s.Customers {
		if c.CompanyID == companyID {
			cc := c
			out = append(out, &cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, limit, offset), nil
}

func (r *CustomerRepo) IncrementSaldo(id string, delta decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.SaldoPendiente = c.SaldoPendiente.Add(delta)
	r.s.Customers[id] = c
	return nil
}

// ── Sales ─────────────────────────────────────────────────────────────────────

var (
	_ repository.SaleRepository       = (*SaleRepo)(nil)
	_ repository.ReceivableRepository = (*ReceivableRepo)(nil)
)

type SaleRepo struct{ s *Store }

func NewSaleRepo(s *Store) *SaleRepo { return &SaleRepo{s: s} }

func (r *SaleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Sales[sale.ID] = *sale
	return nil
}

func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.SaleDetails = append(r.s.SaleDetails, *detail)
	return nil
}

func (r *SaleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Sale
	for _, s := range r.s.Sales {
		if s.CompanyID == companyID {
			ss := s
			out = append(out, &ss)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SoldAt.After(out[j].SoldAt) })
	return paginate(out, limit, offset), nil
}

func (r *SaleRepo) GetDetailsBySale(saleID string) ([]*entity.SaleDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.SaleDetail
	for i := range r.s.SaleDetails {
		if r.s.SaleDetails[i].SaleID == saleID {
			d := r.s.SaleDetails[i]
			out = append(out, &d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNo < out[j].LineNo })
	return out, nil
}

type ReceivableRepo struct{ s *Store }

func NewReceivableRepo(s *Store) *ReceivableRepo { return &ReceivableRepo{s: s} }

func (r *ReceivableRepo) Create(rec *entity.Receivable) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Receivables[rec.SaleID] = *rec
	return nil
}

func (r *ReceivableRepo) GetBySale(saleID string) (*entity.Receivable, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.Receivables[saleID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *ReceivableRepo) ListOutstandingByCompany(companyID string) ([]*repository.ReceivableWithSale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*repository.ReceivableWithSale
	for _, rec := range r.s.Receivables {
		if rec.Status == entity.ReceivableStatusPaid {
			continue
		}
		sale, ok := r.s.Sales[rec.SaleID]
		if !ok || sale.CompanyID != companyID {
			continue
		}
		row := &repository.ReceivableWithSale{
			Receivable: rec,
			SaleTotal:  sale.Total,
			SoldAt:     sale.SoldAt,
		}
		if sale.CustomerID != "" {
			row.CustomerID = sale.CustomerID
			if c, ok := r.s.Customers[sale.CustomerID]; ok {
				row.CustomerName = c.Name
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Receivable.DueDate.Before(out[j].Receivable.DueDate)
	})
	return out, nil
}

// ── Proveedoras y consignación ────────────────────────────────────────────────

var (
	_ repository.ProveedoraRepository        = (*ProveedoraRepo)(nil)
	_ repository.ConsignacionRepository      = (*ConsignacionRepo)(nil)
	_ repository.VentaConsignacionRepository = (*VentaConsignacionRepo)(nil)
	_ repository.LiquidacionRepository       = (*LiquidacionRepo)(nil)
)

type ProveedoraRepo struct{ s *Store }

func NewProveedoraRepo(s *Store) *ProveedoraRepo { return &ProveedoraRepo{s: s} }

func (r *ProveedoraRepo) Create(p *entity.Proveedora) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Proveedoras[p.ID] = *p
	return nil
}

func (r *ProveedoraRepo) GetByID(id string) (*entity.Proveedora, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Proveedoras[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProveedoraRepo) ListByCompany(companyID string, activeOnly bool) ([]*entity.Proveedora, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Proveedora
	for _, p := range r.s.Proveedoras {
		if p.CompanyID != companyID {
			continue
		}
		if activeOnly && !p.Active {
			continue
		}
		pp := p
		out = append(out, &pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type ConsignacionRepo struct{ s *Store }

func NewConsignacionRepo(s *Store) *ConsignacionRepo { return &ConsignacionRepo{s: s} }

func (r *ConsignacionRepo) Create(c *entity.Consignacion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Consignaciones[c.ID] = *c
	return nil
}

func (r *ConsignacionRepo) GetByID(id string) (*entity.Consignacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Consignaciones[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ConsignacionRepo) ListByCompany(companyID string) ([]*entity.Consignacion, error) {
	return r.listWhere(func(c entity.Consignacion) bool { return c.CompanyID == companyID }), nil
}

func (r *ConsignacionRepo) ListByProveedora(companyID, proveedoraID string) ([]*entity.Consignacion, error) {
	return r.listWhere(func(c entity.Consignacion) bool {
		return c.CompanyID == companyID && c.ProveedoraID == proveedoraID
	}), nil
}

func (r *ConsignacionRepo) FindOldestActive(companyID, productID string) (*entity.Consignacion, error) {
	lots := r.listWhere(func(c entity.Consignacion) bool {
		return c.CompanyID == companyID && c.ProductID == productID &&
			c.Status == entity.ConsignacionStatusActive && c.Available > 0
	})
	if len(lots) == 0 {
		return nil, nil
	}
	return lots[0], nil
}

func (r *ConsignacionRepo) DecrementAvailable(id string, qty int) (*entity.Consignacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Consignaciones[id]
	if !ok || c.Available < qty {
		return nil, domain.ErrInsufficientStock
	}
	c.Available -= qty
	if c.Available == 0 {
		c.Status = entity.ConsignacionStatusClosed
	}
	r.s.Consignaciones[id] = c
	return &c, nil
}

func (r *ConsignacionRepo) Close(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Consignaciones[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = entity.ConsignacionStatusClosed
	r.s.Consignaciones[id] = c
	return nil
}

func (r *ConsignacionRepo) listWhere(pred func(entity.Consignacion) bool) []*entity.Consignacion {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Consignacion
	for _, c := range r.s.Consignaciones {
		if pred(c) {
			cc := c
			out = append(out, &cc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceivedAt.Before(out[j].ReceivedAt) })
	return out
}

type VentaConsignacionRepo struct{ s *Store }

func NewVentaConsignacionRepo(s *Store) *VentaConsignacionRepo { return &VentaConsignacionRepo{s: s} }

func (r *VentaConsignacionRepo) Create(v *entity.VentaConsignacion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.VentasConsignacion[v.ID] = *v
	return nil
}

func (r *VentaConsignacionRepo) ListUnsettledByProveedora(companyID, proveedoraID string, forUpdate bool) ([]*entity.VentaConsignacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.VentaConsignacion
	for _, v := range r.s.VentasConsignacion {
		if v.Liquidado {
			continue
		}
		lot, ok := r.s.Consignaciones[v.ConsignacionID]
		if !ok || lot.CompanyID != companyID || lot.ProveedoraID != proveedoraID {
			continue
		}
		vv := v
		out = append(out, &vv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SoldAt.Before(out[j].SoldAt) })
	return out, nil
}

func (r *VentaConsignacionRepo) ListByConsignacion(consignacionID string) ([]*entity.VentaConsignacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.VentaConsignacion
	for _, v := range r.s.VentasConsignacion {
		if v.ConsignacionID == consignacionID {
			vv := v
			out = append(out, &vv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SoldAt.Before(out[j].SoldAt) })
	return out, nil
}

func (r *VentaConsignacionRepo) MarkLiquidadas(ids []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		v, ok := r.s.VentasConsignacion[id]
		if !ok {
			return domain.ErrNotFound
		}
		v.Liquidado = true
		r.s.VentasConsignacion[id] = v
	}
	return nil
}

type LiquidacionRepo struct{ s *Store }

func NewLiquidacionRepo(s *Store) *LiquidacionRepo { return &LiquidacionRepo{s: s} }

func (r *LiquidacionRepo) Create(l *entity.Liquidacion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Liquidaciones[l.ID] = *l
	return nil
}

func (r *LiquidacionRepo) CreateDetalle(d *entity.LiquidacionDetalle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.LiqDetalles = append(r.s.LiqDetalles, *d)
	return nil
}

func (r *LiquidacionRepo) GetByID(id string) (*entity.Liquidacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.Liquidaciones[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *LiquidacionRepo) ListByProveedora(companyID, proveedoraID string) ([]*entity.Liquidacion, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Liquidacion
	for _, l := range r.s.Liquidaciones {
		if l.CompanyID == companyID && l.ProveedoraID == proveedoraID {
			ll := l
			out = append(out, &ll)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CutoffDate.After(out[j].CutoffDate) })
	return out, nil
}

func (r *LiquidacionRepo) GetDetalles(liquidacionID string) ([]*entity.LiquidacionDetalle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.LiquidacionDetalle
	for i := range r.s.LiqDetalles {
		if r.s.LiqDetalles[i].LiquidacionID == liquidacionID {
			d := r.s.LiqDetalles[i]
			out = append(out, &d)
		}
	}
	return out, nil
}

func (r *LiquidacionRepo) UpdatePago(l *entity.Liquidacion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.Liquidaciones[l.ID]
	if !ok {
		return domain.ErrLiquidacionNotFound
	}
	existing.AmountPaid = l.AmountPaid
	existing.Status = l.Status
	existing.PaidAt = l.PaidAt
	r.s.Liquidaciones[l.ID] = existing
	return nil
}

// ── Catálogo, empresas y planes ───────────────────────────────────────────────

var (
	_ repository.ProductRepository = (*ProductRepo)(nil)
	_ repository.CompanyRepository = (*CompanyRepo)(nil)
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.PlanRepository    = (*PlanRepo)(nil)
)

type ProductRepo struct{ s *Store }

func NewProductRepo(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.s.Products {
		pp := p
		out = append(out, &pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type CompanyRepo struct{ s *Store }

func NewCompanyRepo(s *Store) *CompanyRepo { return &CompanyRepo{s: s} }

func (r *CompanyRepo) Create(c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Companies[c.ID] = *c
	return nil
}

func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CompanyRepo) List() ([]*entity.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Company
	for _, c := range r.s.Companies {
		cc := c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *CompanyRepo) UpdateStatus(id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.Companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	r.s.Companies[id] = c
	return nil
}

type UserRepo struct{ s *Store }

func NewUserRepo(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Users[u.ID] = *u
	return nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if u.Email == email {
			uu := u
			return &uu, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.Users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type PlanRepo struct{ s *Store }

func NewPlanRepo(s *Store) *PlanRepo { return &PlanRepo{s: s} }

func (r *PlanRepo) GetByID(id string) (*entity.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.Plans[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PlanRepo) List() ([]*entity.Plan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Plan
	for _, p := range r.s.Plans {
		pp := p
		out = append(out, &pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func paginate[T any](in []*T, limit, offset int) []*T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
