package usecase

import (
	"strings"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// CompanyDataUseCase arma el bloque de contexto que consume el asistente IA:
// identidad de la empresa, servicios activos, ofertas publicadas y tipos de
// documento aceptados. Las claves del payload están en francés porque el
// prompt del asistente y el frontend lo están.
type CompanyDataUseCase struct {
	companies  repository.CompanyRepository
	offers     repository.VirtualOfficeOfferRepository
	fileTypes  repository.FileTypeRepository
	categories repository.CategoryFileRepository
}

// NewCompanyDataUseCase construye el caso de uso de datos de empresa.
func NewCompanyDataUseCase(
	companies repository.CompanyRepository,
	offers repository.VirtualOfficeOfferRepository,
	fileTypes repository.FileTypeRepository,
	categories repository.CategoryFileRepository,
) *CompanyDataUseCase {
	return &CompanyDataUseCase{companies: companies, offers: offers, fileTypes: fileTypes, categories: categories}
}

// BySlug devuelve el contexto completo del tenant identificado por slug.
func (uc *CompanyDataUseCase) BySlug(slug string) (*dto.CompanyRAGData, error) {
	company, err := uc.companies.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	offers, err := uc.offers.List(repository.OfferFilter{CompanyID: &company.ID})
	if err != nil {
		return nil, err
	}
	fileTypes, err := uc.fileTypes.List(&company.ID, false)
	if err != nil {
		return nil, err
	}

	out := &dto.CompanyRAGData{
		Entreprise: dto.RAGEntreprise{
			Nom:         company.Name,
			Description: company.Description,
			Telephone:   company.Phone,
			Email:       company.Email,
			Adresse: dto.RAGAdresse{
				LigneAdresse: company.AddressLine,
				CodePostal:   company.PostalCode,
				Ville:        company.City,
				Region:       company.State,
				Pays:         company.Country,
			},
			Horaires: company.BusinessHour,
			ServicesActifs: map[string]bool{
				"gestion_abonnements":    company.ManagePlanIsActive,
				"bureau_virtuel":         company.VirtualOfficeIsActive,
				"gestion_courrier":       company.PostMailManagementIsActive,
				"scan_courrier":          company.MailScanningIsActive,
				"signature_electronique": company.ElectronicSignatureIsActive,
			},
		},
		Domiciliation: dto.RAGDomiciliation{
			ServicesDisponibles:    uc.servicesSummary(company),
			OffresBureauVirtuel:    uc.ragOffers(offers),
			TypesDocumentsAcceptes: uc.ragDocTypes(fileTypes),
			ServicesCourrier: map[string]bool{
				"reexpedition": company.PostMailManagementIsActive,
				"numerisation": company.MailScanningIsActive,
			},
		},
	}
	return out, nil
}

func (uc *CompanyDataUseCase) servicesSummary(c *entity.Company) string {
	var services []string
	if c.VirtualOfficeIsActive {
		services = append(services, "domiciliation commerciale")
	}
	if c.PostMailManagementIsActive {
		services = append(services, "gestion du courrier")
	}
	if c.MailScanningIsActive {
		services = append(services, "numérisation du courrier")
	}
	if c.ManagePlanIsActive {
		services = append(services, "gestion des abonnements")
	}
	if len(services) == 0 {
		return "aucun service actif"
	}
	return strings.Join(services, ", ")
}

func (uc *CompanyDataUseCase) ragOffers(offers []*entity.VirtualOfficeOffer) []dto.RAGOffre {
	out := make([]dto.RAGOffre, 0, len(offers))
	for _, o := range offers {
		price, _ := o.Price.Float64()
		out = append(out, dto.RAGOffre{
			Nom:            o.Name,
			Description:    o.Description,
			PrixMensuel:    price,
			ServicesInclus: o.Features,
			MiseEnAvant:    o.IsTagged,
			Tag:            o.Tag,
		})
	}
	return out
}

func (uc *CompanyDataUseCase) ragDocTypes(types []*entity.DomiciliationFileType) []dto.RAGDocType {
	out := make([]dto.RAGDocType, 0, len(types))
	for _, t := range types {
		pour := "Société"
		if t.CategoryFileID != nil {
			if cat, err := uc.categories.GetByID(*t.CategoryFileID); err == nil && cat != nil {
				if cat.LabelID != nil && *cat.LabelID == "auto-contractor" {
					pour = "Auto-entrepreneur"
				}
				out = append(out, dto.RAGDocType{
					Type:        t.Label,
					Description: t.Description,
					Categorie:   &cat.CategoryName,
					Pour:        pour,
				})
				continue
			}
		}
		out = append(out, dto.RAGDocType{
			Type:        t.Label,
			Description: t.Description,
			Pour:        pour,
		})
	}
	return out
}
