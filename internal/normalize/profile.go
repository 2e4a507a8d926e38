package normalize

import "strings"

// TableProfile pins down, per legacy table, the candidate column lists the
// resolver tries for each logical field. Profiles replace the column-name
// guessing the old PHP-era tables forced on every call site: the candidate
// order is declared once here and resolved at startup.
type TableProfile struct {
	Table       string
	Label       string
	Description string

	ID          []string
	Name        []string
	Slug        []string
	Tagline     []string
	Short       []string
	Body        []string
	Phones      []string
	Emails      []string
	Services    []string
	Address     []string
	Room        []string
	Gallery     []string
	Logo        []string
	Cover       []string
	Website     []string
	Instagram   []string
	Facebook    []string
	LinkedIn    []string
	WhatsApp    []string
	Highlight   []string
	Published   []string
	CreatedAt   []string
	UpdatedAt   []string
	PublishedAt []string
}

// Generic candidate lists shared by every profile. Table-specific synthesized
// names (TableCandidates) are tried first for gallery, slug and detail-path
// fields.
var (
	genericID       = []string{"id", "pk", "codigo", "cod", "id_empresa"}
	genericName     = []string{"titulo", "title", "nome", "name", "empresa", "razao_social"}
	genericSlug     = []string{"slug", "seo_url", "url_amigavel", "link"}
	genericTagline  = []string{"tagline", "slogan", "frase", "subtitulo"}
	genericShort    = []string{"descricao_curta", "resumo", "short_description", "excerpt", "chamada"}
	genericBody     = []string{"descricao", "description", "texto", "conteudo", "sobre", "body"}
	genericPhones   = []string{"telefones", "telefone", "phones", "phone", "fone", "celular", "contato"}
	genericEmails   = []string{"emails", "email", "e_mail", "mail"}
	genericServices = []string{"servicos", "services", "especialidades", "atuacao"}
	genericAddress  = []string{"endereco", "address", "localizacao", "logradouro"}
	genericRoom     = []string{"sala", "room", "loja", "unidade"}
	genericGallery  = []string{"galeria", "gallery", "fotos", "imagens", "midia", "media"}
	genericLogo     = []string{"logo", "logotipo", "logomarca", "marca"}
	genericCover    = []string{"capa", "cover", "banner", "imagem_capa", "imagem"}
	genericSite     = []string{"site", "website", "url", "pagina"}
	genericInsta    = []string{"instagram", "insta", "ig"}
	genericFace     = []string{"facebook", "face", "fb"}
	genericLinked   = []string{"linkedin"}
	genericWhats    = []string{"whatsapp", "whats", "zap"}
	genericFlag     = []string{"destaque", "highlight", "featured", "em_destaque"}
	genericStatus   = []string{"publicado", "published", "ativo", "active", "status", "visivel"}
	genericCreated  = []string{"created_at", "criado_em", "data_criacao", "data_cadastro", "data"}
	genericUpdated  = []string{"updated_at", "atualizado_em", "data_atualizacao", "modificado_em"}
	genericPubAt    = []string{"published_at", "data_publicacao", "publicado_em", "data", "created_at"}
)

func categoryProfile(table, label, description string) TableProfile {
	return TableProfile{
		Table:       table,
		Label:       label,
		Description: description,
		ID:          genericID,
		Name:        genericName,
		Slug:        append(TableCandidates(table, "slug"), genericSlug...),
		Tagline:     genericTagline,
		Short:       genericShort,
		Body:        genericBody,
		Phones:      genericPhones,
		Emails:      genericEmails,
		Services:    genericServices,
		Address:     genericAddress,
		Room:        genericRoom,
		Gallery:     append(TableCandidates(table, "galeria"), genericGallery...),
		Logo:        genericLogo,
		Cover:       genericCover,
		Website:     genericSite,
		Instagram:   genericInsta,
		Facebook:    genericFace,
		LinkedIn:    genericLinked,
		WhatsApp:    genericWhats,
		Highlight:   genericFlag,
		Published:   genericStatus,
		CreatedAt:   genericCreated,
		UpdatedAt:   genericUpdated,
	}
}

// CategoryProfiles lists the nine legacy category tables in display order.
var CategoryProfiles = []TableProfile{
	categoryProfile("advocacia", "Advocacia", "Escritórios de advocacia e serviços jurídicos"),
	categoryProfile("beleza", "Beleza", "Salões, estúdios e clínicas de estética"),
	categoryProfile("contabilidade", "Contabilidade", "Escritórios contábeis e consultoria fiscal"),
	categoryProfile("imobiliaria", "Imobiliária", "Imobiliárias e corretores"),
	categoryProfile("marketing", "Marketing", "Agências de marketing e comunicação"),
	categoryProfile("moda", "Moda", "Lojas de vestuário e acessórios"),
	categoryProfile("saude", "Saúde", "Clínicas, consultórios e bem-estar"),
	categoryProfile("tecnologia", "Tecnologia", "Empresas de software e serviços de TI"),
	categoryProfile("turismo", "Turismo", "Agências de viagem e turismo"),
}

func contentProfile(table, label string) TableProfile {
	return TableProfile{
		Table:       table,
		Label:       label,
		ID:          genericID,
		Name:        []string{"titulo", "title", "nome", "name"},
		Slug:        append(TableCandidates(table, "slug"), genericSlug...),
		Short:       genericShort,
		Body:        genericBody,
		Cover:       genericCover,
		Published:   genericStatus,
		PublishedAt: genericPubAt,
		UpdatedAt:   genericUpdated,
	}
}

// ContentProfiles maps the content kinds served by the blog, cases and
// templates endpoints to their backing tables.
var ContentProfiles = map[string]TableProfile{
	"blog":      contentProfile("blog_posts", "Blog"),
	"cases":     contentProfile("cases", "Cases"),
	"templates": contentProfile("templates", "Templates"),
}

var categoryIndex = func() map[string]TableProfile {
	m := make(map[string]TableProfile, len(CategoryProfiles))
	for _, p := range CategoryProfiles {
		m[p.Table] = p
	}
	return m
}()

// CategoryProfile returns the profile for a category slug, if it is one of
// the known legacy tables. The slug doubles as the physical table name.
func CategoryProfile(slug string) (TableProfile, bool) {
	p, ok := categoryIndex[strings.ToLower(strings.TrimSpace(slug))]
	return p, ok
}

// OrderColumn picks the column paged queries should sort by: the first
// id-like candidate present in the table, else the first physical column.
// The legacy tables carry no guaranteed primary key name, and unordered
// LIMIT/OFFSET pagination is not stable in MySQL.
func OrderColumn(columns []string) (string, bool) {
	for _, candidate := range genericID {
		for _, col := range columns {
			if strings.EqualFold(col, candidate) {
				return col, true
			}
		}
	}
	if len(columns) > 0 {
		return columns[0], true
	}
	return "", false
}
