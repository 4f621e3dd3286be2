package domain

import "time"

// Shop парикмахерская (tenant)
type Shop struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// ShopLockKey ключ блокировки, под которой меняются очередь и календарь парикмахерской
func ShopLockKey(shopID string) string {
	return "shop:" + shopID
}
