package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lovehampers/lovehampers-backend/internal/app/model"
	"github.com/lovehampers/lovehampers-backend/internal/app/pricing"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const reportSheetName = "Orders"

// ReportService renders the order book as an XLSX workbook for the admin.
// Each row carries the 50% deposit and balance alongside the total so the
// admin can reconcile part-payments against the payment reference.
type ReportService interface {
	ExportOrders(w io.Writer) (string, error)
}

type reportService struct {
	orderRepo repository.OrderRepository
}

func NewReportService(orderRepo repository.OrderRepository) ReportService {
	return &reportService{orderRepo: orderRepo}
}

var reportHeaders = []string{
	"Order ID", "Placed At", "Status", "Customer", "Email", "Phone",
	"Delivery Address", "Payment Reference", "Items",
	"Total", "Deposit (50%)", "Balance",
}

// ExportOrders writes the workbook to w and returns a suggested filename
func (s *reportService) ExportOrders(w io.Writer) (string, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load orders for export", err)
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheetName)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(reportSheetName, cell, header); err != nil {
			return "", err
		}
	}

	for row, order := range orders {
		deposit, balance := pricing.Split(order.TotalAmount)
		values := []interface{}{
			order.ID,
			order.CreatedAt.Format("2006-01-02 15:04"),
			string(order.Status),
			order.FullName,
			order.Email,
			order.PhoneNumber,
			order.Address,
			order.TransactionCode,
			summarizeItems(order.Items),
			order.TotalAmount,
			deposit,
			balance,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(reportSheetName, cell, value); err != nil {
				return "", err
			}
		}
	}

	if err := f.Write(w); err != nil {
		logger.Error("Failed to write order export", err)
		return "", err
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	logger.Info("Order export generated", map[string]interface{}{
		"order_count": len(orders),
		"filename":    filename,
	})
	return filename, nil
}

func summarizeItems(items []model.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		part := fmt.Sprintf("%s x%d", item.ProductName, item.Quantity)
		if item.CustomText != "" {
			part = fmt.Sprintf("%s (%s)", part, item.CustomText)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
