package models

type DashboardStats struct {
	TotalProducts    int     `json:"total_products"`
	TotalStockValue  float64 `json:"total_stock_value"`
	TodayOrders      int     `json:"today_orders"`
	TodayRevenue     float64 `json:"today_revenue"`
	LowStockProducts int     `json:"low_stock_products"`
}

type ProductStat struct {
	SeafoodID   string  `json:"seafood_id"`
	Name        string  `json:"name"`
	TotalWeight float64 `json:"total_weight"`
	TotalAmount float64 `json:"total_amount"`
	OrderCount  int     `json:"order_count"`
}

type RoleStats struct {
	TotalRoles  int `json:"total_roles"`
	ActiveRoles int `json:"active_roles"`
}

type PermissionStats struct {
	TotalPermissions int            `json:"total_permissions"`
	ByModule         map[string]int `json:"by_module,omitempty"`
}

type UserRoleStats struct {
	TotalAssignments int            `json:"total_assignments"`
	UsersByRole      map[string]int `json:"users_by_role,omitempty"`
}
