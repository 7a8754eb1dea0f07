package repository

import (
	"context"
	"strings"
	"time"

	"cotfact/internal/domain/entities"
	"cotfact/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCompanyInfoTableName         = "company_info"
	defaultTemplatePreferencesTableName = "template_preferences"
)

type companyInfoItem struct {
	OwnerID   string `dynamodbav:"owner_id"`
	Name      string `dynamodbav:"name"`
	TaxID     string `dynamodbav:"tax_id"`
	Address   string `dynamodbav:"address"`
	Phone     string `dynamodbav:"phone"`
	Email     string `dynamodbav:"email"`
	LogoURL   string `dynamodbav:"logo_url"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type templatePreferencesItem struct {
	OwnerID       string `dynamodbav:"owner_id"`
	PrimaryColor  string `dynamodbav:"primary_color"`
	AccentColor   string `dynamodbav:"accent_color"`
	Font          string `dynamodbav:"font"`
	ShowLogo      bool   `dynamodbav:"show_logo"`
	DateFormat    string `dynamodbav:"date_format"`
	InvoiceFooter string `dynamodbav:"invoice_footer"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists the per-owner singleton settings rows.
//
// Table requirements (two tables, same shape of key):
//   - PK: owner_id (string)
//
// Writes are plain upserts: the rows are singletons per owner, so there is
// no existence precondition to enforce.

type SettingsDynamoRepository struct {
	ddb        *dynamodb.Client
	infoTable  string
	prefsTable string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:        ddb,
		infoTable:  getenvDefault("COMPANY_INFO_TABLE", defaultCompanyInfoTableName),
		prefsTable: getenvDefault("TEMPLATE_PREFERENCES_TABLE", defaultTemplatePreferencesTableName),
	}
}

func (r *SettingsDynamoRepository) GetCompanyInfo(ctx context.Context, ownerID string) (entities.CompanyInfo, error) {
	out, err := r.getByOwner(ctx, r.infoTable, ownerID)
	if err != nil {
		return entities.CompanyInfo{}, err
	}
	if len(out) == 0 {
		return entities.CompanyInfo{}, nil
	}

	var it companyInfoItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.CompanyInfo{}, err
	}
	return fromCompanyInfoItem(it), nil
}

func (r *SettingsDynamoRepository) PutCompanyInfo(ctx context.Context, info entities.CompanyInfo) (entities.CompanyInfo, error) {
	info.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toCompanyInfoItem(info))
	if err != nil {
		return entities.CompanyInfo{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.infoTable),
		Item:      av,
	})
	if err != nil {
		return entities.CompanyInfo{}, err
	}
	return info, nil
}

func (r *SettingsDynamoRepository) GetTemplatePreferences(ctx context.Context, ownerID string) (entities.TemplatePreferences, error) {
	out, err := r.getByOwner(ctx, r.prefsTable, ownerID)
	if err != nil {
		return entities.TemplatePreferences{}, err
	}
	if len(out) == 0 {
		return entities.TemplatePreferences{}, nil
	}

	var it templatePreferencesItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.TemplatePreferences{}, err
	}
	return fromTemplatePreferencesItem(it), nil
}

func (r *SettingsDynamoRepository) PutTemplatePreferences(ctx context.Context, prefs entities.TemplatePreferences) (entities.TemplatePreferences, error) {
	prefs.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toTemplatePreferencesItem(prefs))
	if err != nil {
		return entities.TemplatePreferences{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.prefsTable),
		Item:      av,
	})
	if err != nil {
		return entities.TemplatePreferences{}, err
	}
	return prefs, nil
}

func (r *SettingsDynamoRepository) getByOwner(ctx context.Context, table, ownerID string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func toCompanyInfoItem(info entities.CompanyInfo) companyInfoItem {
	return companyInfoItem{
		OwnerID:   info.OwnerID,
		Name:      info.Name,
		TaxID:     combineTaxID(info.RUC, info.DV),
		Address:   info.Address,
		Phone:     info.Phone,
		Email:     info.Email,
		LogoURL:   info.LogoURL,
		UpdatedAt: info.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCompanyInfoItem(it companyInfoItem) entities.CompanyInfo {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	ruc, dv := splitTaxID(it.TaxID)
	return entities.CompanyInfo{
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		RUC:       ruc,
		DV:        dv,
		Address:   it.Address,
		Phone:     it.Phone,
		Email:     it.Email,
		LogoURL:   it.LogoURL,
		UpdatedAt: updatedAt,
	}
}

// combineTaxID stores RUC and DV as one "RUC-DV" column. The RUC itself may
// contain dashes; the DV never does, so splitTaxID cuts at the last dash.
// The separator is written even when DV is empty so the split round-trips.
func combineTaxID(ruc, dv string) string {
	if ruc == "" && dv == "" {
		return ""
	}
	return ruc + "-" + dv
}

func splitTaxID(taxID string) (ruc, dv string) {
	i := strings.LastIndex(taxID, "-")
	if i < 0 {
		return taxID, ""
	}
	return taxID[:i], taxID[i+1:]
}

func toTemplatePreferencesItem(prefs entities.TemplatePreferences) templatePreferencesItem {
	return templatePreferencesItem{
		OwnerID:       prefs.OwnerID,
		PrimaryColor:  prefs.PrimaryColor,
		AccentColor:   prefs.AccentColor,
		Font:          prefs.Font,
		ShowLogo:      prefs.ShowLogo,
		DateFormat:    prefs.DateFormat,
		InvoiceFooter: prefs.InvoiceFooter,
		UpdatedAt:     prefs.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTemplatePreferencesItem(it templatePreferencesItem) entities.TemplatePreferences {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.TemplatePreferences{
		OwnerID:       it.OwnerID,
		PrimaryColor:  it.PrimaryColor,
		AccentColor:   it.AccentColor,
		Font:          it.Font,
		ShowLogo:      it.ShowLogo,
		DateFormat:    it.DateFormat,
		InvoiceFooter: it.InvoiceFooter,
		UpdatedAt:     updatedAt,
	}
}
