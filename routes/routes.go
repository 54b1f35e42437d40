// Package routes wires the controllers onto the Gin engine.
package routes

import (
	"storefront-backend/controllers"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything Register needs.
type Controllers struct {
	Cart      *controllers.CartController
	Product   *controllers.ProductController
	Category  *controllers.CategoryController
	Coupon    *controllers.CouponController
	Order     *controllers.OrderController
	Warehouse *controllers.WarehouseController
	User      *controllers.UserController
}

// Register mounts every API route group under /api.
func Register(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	cart := api.Group("/cart")
	{
		cart.GET("/:userId", c.Cart.GetCart)
		cart.POST("/", c.Cart.AddItem)
		cart.POST("/remove/item", c.Cart.RemoveItem)
		cart.PUT("/update/qty", c.Cart.UpdateQuantity)
		cart.POST("/apply/discount", c.Cart.ApplyDiscount)
	}

	product := api.Group("/product")
	{
		product.POST("/", c.Product.CreateProduct)
		product.GET("/", c.Product.ListProducts)
		product.GET("/:id", c.Product.GetProduct)
		product.PUT("/:id", c.Product.UpdateProduct)
		product.DELETE("/:id", c.Product.DeleteProduct)
	}

	category := api.Group("/category")
	{
		category.POST("/", c.Category.CreateCategory)
		category.GET("/", c.Category.ListCategories)
		category.GET("/:id", c.Category.GetCategory)
		category.PUT("/:id", c.Category.UpdateCategory)
		category.DELETE("/:id", c.Category.DeleteCategory)
	}

	coupon := api.Group("/coupon")
	{
		coupon.POST("/", c.Coupon.CreateCoupon)
		coupon.GET("/", c.Coupon.ListCoupons)
		coupon.GET("/:id", c.Coupon.GetCoupon)
		coupon.PUT("/:id", c.Coupon.UpdateCoupon)
		coupon.DELETE("/:id", c.Coupon.DeleteCoupon)
		coupon.POST("/apply", c.Coupon.ApplyCoupon)
	}

	order := api.Group("/order")
	{
		order.POST("/", c.Order.CreateOrder)
		order.GET("/", c.Order.ListOrders)
		order.GET("/:id", c.Order.GetOrder)
		order.GET("/user/:userId", c.Order.ListUserOrders)
		order.GET("/status/:status", c.Order.ListOrdersByStatus)
		order.GET("/recent/orders", c.Order.RecentOrders)
		order.PUT("/:id/status", c.Order.UpdateOrderStatus)
		order.DELETE("/:id", c.Order.DeleteOrder)
	}

	warehouse := api.Group("/warehouse")
	{
		warehouse.POST("/", c.Warehouse.CreateWarehouse)
		warehouse.GET("/", c.Warehouse.ListWarehouses)
		warehouse.GET("/active", c.Warehouse.ListActiveWarehouses)
		warehouse.GET("/inventory", c.Warehouse.ListWarehousesByInventory)
		warehouse.GET("/:id", c.Warehouse.GetWarehouse)
		warehouse.PUT("/:id", c.Warehouse.UpdateWarehouse)
		warehouse.DELETE("/:id", c.Warehouse.DeleteWarehouse)
	}

	user := api.Group("/user")
	{
		user.POST("/", c.User.CreateUser)
		user.GET("/get/users", c.User.ListUsers)
		user.GET("/:id", c.User.GetUser)
		user.PUT("/:id", c.User.UpdateUser)
		user.DELETE("/:id", c.User.DeleteUser)
	}
}
