package seed

import "jacsonsite/models"

const (
	AdminUsername = "jacsonadmin"
	AdminPassword = "Mudar@123"
)

var services = []models.CatalogItem{
	{
		ID:               "georreferenciamento",
		Title:            "Georreferenciamento",
		ShortDescription: "Certificação de imóveis rurais junto ao INCRA, garantindo a exatidão de suas coordenadas geográficas.",
		LongDescription:  "O georreferenciamento de imóveis rurais é um procedimento obrigatório para a regularização de propriedades rurais no Brasil. Nosso serviço garante a medição e a descrição precisas dos limites do seu imóvel, utilizando tecnologia de ponta para gerar as coordenadas geográficas exigidas pelo INCRA. Isso assegura a segurança jurídica da propriedade, facilitando processos de compra, venda, desmembramento e financiamento.",
		ImageURL:         "https://picsum.photos/seed/geo/800/600",
	},
	{
		ID:               "retificacao-de-area",
		Title:            "Retificação de Área",
		ShortDescription: "Correção de registros imobiliários para que reflitam as verdadeiras dimensões e limites da propriedade.",
		LongDescription:  "A retificação de área é o processo legal e técnico para corrigir as informações de um imóvel em seu registro. Se a área real da sua propriedade difere da que está na matrícula, nosso serviço realiza o levantamento topográfico detalhado e elabora toda a documentação necessária para a correção junto ao cartório, garantindo que o registro reflita a realidade física do terreno.",
		ImageURL:         "https://picsum.photos/seed/retificacao/800/600",
	},
	{
		ID:               "topografia",
		Title:            "Topografia",
		ShortDescription: "Levantamentos topográficos planialtimétricos para diversos tipos de projetos de engenharia e arquitetura.",
		LongDescription:  "Realizamos levantamentos topográficos planialtimétricos detalhados, que são a base para qualquer projeto de engenharia, arquitetura ou construção. Nossos serviços fornecem dados precisos sobre o relevo, dimensões, e características do terreno, essenciais para o planejamento de loteamentos, estradas, edificações e projetos de infraestrutura em geral.",
		ImageURL:         "https://picsum.photos/seed/topografia/800/600",
	},
	{
		ID:               "drone",
		Title:            "Levantamento com Drone",
		ShortDescription: "Mapeamento aéreo de alta precisão utilizando VANTs (Drones) para agilidade e detalhamento.",
		LongDescription:  "Utilizamos drones de última geração para realizar mapeamentos aéreos rápidos e de alta precisão. Esta tecnologia permite a criação de modelos digitais de terreno, ortofotos e levantamentos detalhados de grandes áreas em um curto espaço de tempo. É a solução ideal para acompanhamento de obras, agricultura de precisão, inspeções de infraestrutura e muito mais.",
		ImageURL:         "https://picsum.photos/seed/drone/800/600",
	},
}

var hero = models.HeroContent{
	MainTitle:   "jacson",
	Subtitle:    "Topografia & Agrimensura",
	Description: "Serviços de Topografia, Agrimensura e Georreferenciamento",
	ButtonText:  "Ligue Agora",
	ButtonLink:  "tel:+5569981191606",
	ImageURL:    "https://images.pexels.com/photos/5473185/pexels-photo-5473185.jpeg?auto=compress&cs=tinysrgb&w=1920&h=1080",
}

var sections = []models.Section{
	{
		Title:    "Sobre",
		Subtitle: "Compromisso com a Precisão e a Qualidade",
		Content:  "Jacson presta serviços de topografia, agrimensura, georreferenciamento de imóvel rural, retificação de área, usucapião, levantamento topográfico planialtimétrico para projetos de infraestrutura, de regularização fundiária, loteamentos, regularização ambiental, etc. A empresa se destaca por prestar serviços direcionados a exigência e a necessidade de cada cliente de forma exclusiva e personalizada.",
		Type:     models.SectionText,
		Order:    1,
		Visible:  true,
	},
	{
		Title:    "Serviços",
		Subtitle: "Soluções Completas para sua Necessidade",
		Type:     models.SectionServices,
		Order:    2,
		Visible:  true,
	},
	{
		Title:    "Empresas Parceiras",
		Subtitle: "Confiança e credibilidade no mercado.",
		Type:     models.SectionCompanies,
		Order:    3,
		Visible:  true,
	},
	{
		Title:    "Projetos",
		Subtitle: "Conheça alguns dos nossos trabalhos",
		Type:     models.SectionProjects,
		Order:    4,
		Visible:  true,
	},
}

var about = models.AboutPageContent{
	PreTitle:   "Sobre",
	Title:      "Jacson Topografia & Agrimensura",
	Subtitle:   "Excelência e precisão em cada projeto.",
	ImageURL:   "https://adenilsongiovanini.com.br/blog/wp-content/uploads/2021/06/rtk-topografia-768x670.png",
	Paragraph1: "Jacson presta serviços de topografia, agrimensura, georreferenciamento de imóvel rural, retificação de área, usucapião, levantamento topográfico planialtimétrico para projetos de infra estrutura, de regularização fundiária, loteamentos, regularização ambiental, etc.",
	Paragraph2: "Jacson se destaca por prestar serviços direcionados a exigência e a necessidade de cada cliente de forma exclusiva e personalizada. Utilizamos equipamentos de última geração e uma equipe altamente qualificada para garantir a máxima precisão e confiabilidade em todos os nossos levantamentos e projetos.",
}

// DefaultSettings is the site settings document of a fresh install.
var DefaultSettings = models.SiteSettings{
	LogoType:      models.LogoText,
	LogoTextLine1: "Jacson",
	LogoTextLine2: "Topografia & Agrimensura",
	LogoImageURL:  "",
}

var companies = []models.Company{
	{Name: "Cachet", Order: 1, LogoURL: "https://www.vectorlogo.zone/logos/cachethq/cachethq-ar21.svg"},
	{Name: "Guitar Center", Order: 2, LogoURL: "https://static.guitarcenter.com/static/gc/img/logo/gc_logo_black.svg"},
	{Name: "TOKICO", Order: 3, LogoURL: "https://i.imgur.com/6K8UmCl.png"},
	{Name: "Shopify", Order: 4, LogoURL: "https://www.vectorlogo.zone/logos/shopify/shopify-ar21.svg"},
	{Name: "Profil Rejser", Order: 5, LogoURL: "https://www.profilrejser.dk/images/logo-profil-rejser.svg"},
}
