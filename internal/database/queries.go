package database

// Customer queries
const (
	InsertCustomerSQL = `
		INSERT INTO customers (name, email, active)
		VALUES ($1, $2, TRUE)
		RETURNING id, created_at`

	GetCustomerByIDSQL = `
		SELECT id, name, email, active, created_at
		FROM customers WHERE id = $1`

	ListActiveCustomersSQL = `
		SELECT id, name, email, active, created_at
		FROM customers
		WHERE active
		ORDER BY id
		LIMIT $1 OFFSET $2`

	UpdateCustomerSQL = `
		UPDATE customers SET name = $1, email = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, email, active, created_at`

	ToggleCustomerActiveSQL = `
		UPDATE customers SET active = NOT active, updated_at = NOW()
		WHERE id = $1`
)

// Restaurant queries
const (
	InsertRestaurantSQL = `
		INSERT INTO restaurants (name, category, phone, delivery_fee, delivery_time_minutes, active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, created_at`

	GetRestaurantByIDSQL = `
		SELECT id, name, category, phone, delivery_fee, delivery_time_minutes, active, created_at
		FROM restaurants WHERE id = $1`

	ListRestaurantsSQL = `
		SELECT id, name, category, phone, delivery_fee, delivery_time_minutes, active, created_at
		FROM restaurants
		ORDER BY id
		LIMIT $1 OFFSET $2`

	ListRestaurantsByCategorySQL = `
		SELECT id, name, category, phone, delivery_fee, delivery_time_minutes, active, created_at
		FROM restaurants
		WHERE category = $1
		ORDER BY id`

	UpdateRestaurantSQL = `
		UPDATE restaurants
		SET name = $1, category = $2, phone = $3, delivery_fee = $4, delivery_time_minutes = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id, name, category, phone, delivery_fee, delivery_time_minutes, active, created_at`

	ToggleRestaurantActiveSQL = `
		UPDATE restaurants SET active = NOT active, updated_at = NOW()
		WHERE id = $1`
)

// Product queries
const (
	InsertProductSQL = `
		INSERT INTO products (restaurant_id, name, category, description, price, available)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, created_at`

	GetProductByIDSQL = `
		SELECT id, restaurant_id, name, category, description, price, available, created_at
		FROM products WHERE id = $1`

	ListProductsByRestaurantSQL = `
		SELECT id, restaurant_id, name, category, description, price, available, created_at
		FROM products
		WHERE restaurant_id = $1
		ORDER BY id`

	UpdateProductSQL = `
		UPDATE products
		SET name = $1, category = $2, description = $3, price = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, restaurant_id, name, category, description, price, available, created_at`

	SetProductAvailabilitySQL = `
		UPDATE products SET available = $1, updated_at = NOW()
		WHERE id = $2`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (customer_id, restaurant_id, street, number, complement,
			neighborhood, city, state, postal_code, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)`

	InsertOrderStatusLogSQL = `
		INSERT INTO order_status_log (order_id, status, changed_by)
		VALUES ($1, $2, $3)`

	GetOrderByIDSQL = `
		SELECT id, customer_id, restaurant_id, street, number, COALESCE(complement, ''),
			COALESCE(neighborhood, ''), city, state, postal_code, total, status, created_at
		FROM orders WHERE id = $1`

	GetOrderItemsSQL = `
		SELECT oi.product_id, p.name, oi.quantity, oi.unit_price, oi.subtotal
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`
)
