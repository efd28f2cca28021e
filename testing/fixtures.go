// Package testing provides test utilities and database setup for testing the label service
package testing

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password every fixture operator is created with.
const TestPassword = "TestPass123!"

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestOperator creates an active operator with a bcrypt-hashed password
func (tf *TestFixtures) CreateTestOperator() (*models.Operator, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	operator := &models.Operator{
		UUID:         uuid.New(),
		Email:        fmt.Sprintf("operator.%s@example.com", randomDigits),
		PasswordHash: string(hashedPassword),
		FullName:     "Test Operator",
		IsActive:     utils.ToPtr(true),
		CreatedAt:    utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(operator).Error; err != nil {
		return nil, fmt.Errorf("failed to create test operator: %w", err)
	}

	return operator, nil
}

// CreateTestSession creates an active session for the operator
func (tf *TestFixtures) CreateTestSession(operatorID uint, accessToken, refreshToken string, expiresAt time.Time) (*models.OperatorSession, error) {
	session := &models.OperatorSession{
		CorrelationID:  uuid.New(),
		OperatorID:     operatorID,
		SessionToken:   accessToken,
		RefreshToken:   utils.ToPtr(refreshToken),
		IsActive:       utils.ToPtr(true),
		CreatedAt:      utils.UTCNow(),
		LastAccessedAt: utils.UTCNow(),
		ExpiresAt:      expiresAt,
	}

	if err := tf.DB.DB.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create test session: %w", err)
	}

	return session, nil
}

// CreateTestLabelConfig creates a 101x152mm label stock for the operator
func (tf *TestFixtures) CreateTestLabelConfig(operatorID uint) (*models.LabelConfig, error) {
	config := &models.LabelConfig{
		UUID:       uuid.New(),
		OperatorID: operatorID,
		Name:       fmt.Sprintf("Test Stock %d", rand.Intn(100000)),
		WidthMM:    101,
		HeightMM:   152,
		SpacingMM:  3,
		IsDefault:  utils.ToPtr(false),
		IsBuiltin:  utils.ToPtr(false),
		CreatedAt:  utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(config).Error; err != nil {
		return nil, fmt.Errorf("failed to create test label config: %w", err)
	}

	return config, nil
}

// CreateTestLabelDesign creates a design with a minimal set of text elements
func (tf *TestFixtures) CreateTestLabelDesign(operatorID, labelConfigID uint) (*models.LabelDesign, error) {
	design := &models.LabelDesign{
		UUID:          uuid.New(),
		OperatorID:    operatorID,
		LabelConfigID: labelConfigID,
		Name:          fmt.Sprintf("Test Design %d", rand.Intn(100000)),
		IsDefault:     utils.ToPtr(false),
		CreatedAt:     utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(design).Error; err != nil {
		return nil, fmt.Errorf("failed to create test label design: %w", err)
	}

	elements := []*models.LabelElement{
		{
			DesignID:  design.ID,
			ElementID: "to_header",
			Kind:      models.ElementKindHeader,
			Text:      "TO",
			X:         20,
			Y:         20,
			FontSize:  5,
			Bold:      utils.ToPtr(true),
			Visible:   utils.ToPtr(true),
			SortOrder: 0,
		},
		{
			DesignID:  design.ID,
			ElementID: "to_name",
			Kind:      models.ElementKindName,
			Text:      "[TO NAME]",
			X:         20,
			Y:         80,
			FontSize:  6,
			Bold:      utils.ToPtr(true),
			Visible:   utils.ToPtr(true),
			SortOrder: 1,
		},
		{
			DesignID:  design.ID,
			ElementID: "to_address",
			Kind:      models.ElementKindAddress,
			Text:      "[TO ADDRESS]",
			X:         20,
			Y:         150,
			FontSize:  4,
			Bold:      utils.ToPtr(false),
			Visible:   utils.ToPtr(true),
			SortOrder: 2,
		},
		{
			DesignID:  design.ID,
			ElementID: "to_phone",
			Kind:      models.ElementKindPhone,
			Text:      "[TO PHONE]",
			X:         20,
			Y:         220,
			FontSize:  3,
			Bold:      utils.ToPtr(false),
			Visible:   utils.ToPtr(true),
			SortOrder: 3,
		},
	}
	for _, element := range elements {
		if err := tf.DB.DB.Create(element).Error; err != nil {
			return nil, fmt.Errorf("failed to create test label element: %w", err)
		}
	}
	design.Elements = make([]models.LabelElement, 0, len(elements))
	for _, element := range elements {
		design.Elements = append(design.Elements, *element)
	}

	return design, nil
}

// CreateTestFontProfile stores a named font profile for the operator
func (tf *TestFixtures) CreateTestFontProfile(operatorID uint, name string, settings map[string]any) (*models.FontProfile, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal font settings: %w", err)
	}

	profile := &models.FontProfile{
		UUID:       uuid.New(),
		OperatorID: operatorID,
		Name:       name,
		Settings:   raw,
		IsPreset:   utils.ToPtr(false),
		CreatedAt:  utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create test font profile: %w", err)
	}

	return profile, nil
}

// CreateTestIconAsset records an icon row without writing any file to disk
func (tf *TestFixtures) CreateTestIconAsset(operatorID uint) (*models.IconAsset, error) {
	icon := &models.IconAsset{
		UUID:       uuid.New(),
		OperatorID: operatorID,
		Name:       fmt.Sprintf("test-icon-%d", rand.Intn(100000)),
		Path:       fmt.Sprintf("/tmp/test-icons/%s.png", uuid.NewString()),
		MimeType:   "image/png",
		WidthDots:  64,
		HeightDots: 64,
		SizeBytes:  1024,
		CreatedAt:  utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(icon).Error; err != nil {
		return nil, fmt.Errorf("failed to create test icon asset: %w", err)
	}

	return icon, nil
}

// CreateTestPrintJob records a finished print job for history and report tests
func (tf *TestFixtures) CreateTestPrintJob(operatorID, designID uint, status models.PrintJobStatus) (*models.PrintJob, error) {
	job := &models.PrintJob{
		UUID:        uuid.New(),
		OperatorID:  operatorID,
		DesignID:    designID,
		PrinterAddr: "192.168.1.50:9100",
		Copies:      1,
		Payload:     []byte("SIZE 101 mm, 152 mm\r\nCLS\r\nPRINT 1\r\n"),
		Status:      status,
		CreatedAt:   utils.UTCNow(),
	}
	if status == models.PrintJobStatusSent {
		job.SentAt = utils.ToPtr(utils.UTCNow())
	}

	if err := tf.DB.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("failed to create test print job: %w", err)
	}

	return job, nil
}
