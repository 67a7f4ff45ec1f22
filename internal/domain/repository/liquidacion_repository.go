package repository

import "github.com/tu-usuario/cosmetica-saas/internal/domain/entity"

// LiquidacionRepository define el puerto de las liquidaciones a proveedoras.
// El total y los detalles de una liquidación son inmutables después de su
// creación; solo UpdatePago muta monto_pagado/estado/fecha_pago.
type LiquidacionRepository interface {
	Create(l *entity.Liquidacion) error
	CreateDetalle(d *entity.LiquidacionDetalle) error
	GetByID(id string) (*entity.Liquidacion, error)
	ListByProveedora(companyID, proveedoraID string) ([]*entity.Liquidacion, error)
	GetDetalles(liquidacionID string) ([]*entity.LiquidacionDetalle, error)
	UpdatePago(l *entity.Liquidacion) error
}
