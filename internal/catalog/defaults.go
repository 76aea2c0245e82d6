package catalog

import "github.com/alterra-fm/screening-cli/internal/model"

// Default returns the built-in COFIDES reference data set. Callers must not
// mutate the result.
func Default() *Catalog {
	return &Catalog{
		Funds:       defaultFunds(),
		Sectors:     defaultSectors(),
		Countries:   defaultCountries(),
		Questions:   defaultQuestions(),
		Clauses:     defaultClauses(),
		Documents:   defaultDocuments(),
		SocialGoals: defaultSocialChallenges(),
	}
}

func defaultFunds() []model.Fund {
	return []model.Fund{
		{
			ID:          model.FundFIEXFonpyme,
			Name:        "Carril Internacional (FIEX/FONPYME)",
			Description: "Internacionalización tradicional.",
			Regulations: []string{"Normas de Desempeño IFC (PS1-PS8)", "Guías EHS Banco Mundial"},
		},
		{
			ID:          model.FundFOCO,
			Name:        "Carril Regulatorio UE (Fondo FOCO)",
			Description: "Inversión extranjera en España ligada a transición verde/digital.",
			Regulations: []string{"Reglamento Taxonomía UE 2020/852", "Criterios DNSH", "Salvaguardas Mínimas (MSS)"},
		},
		{
			ID:          model.FundFIS,
			Name:        "Carril de Impacto (Fondo FIS)",
			Description: "Inversión de Impacto Social y Ecológico.",
			Regulations: []string{"Teoría del Cambio", "Medición de Adicionalidad", "KPIs de Impacto"},
		},
	}
}

func defaultSectors() []model.Sector {
	return []model.Sector{
		{
			ID:           "AGRICULTURE",
			Name:         "Agricultura y Ganadería",
			CNAE:         "01",
			InherentRisk: 4,
			IsExcluded:   false,
			IsRestricted: true,
			Methodology:  "POLÍTICA SECTORIAL AGRONEGOCIOS: Requiere validación obligatoria de no-deforestación (EUDR) y análisis de estrés hídrico mediante herramienta Aqueduct (WRI).",
			PolicyConfig: &model.SectorPolicyConfig{
				RevenueThreshold:       100,
				RequiresTransitionPlan: false,
				TaxonomyStatus:         model.TaxonomyGreen,
				RestrictedActivities:   []string{"Cultivo de Palma", "Soja en zonas de riesgo", "Ganadería intensiva"},
				ExclusionReason:        "Exclusión por riesgo de deforestación severa no mitigable.",
			},
			SubActivity: []string{
				"Cultivos Perennes (Frutales, Olivo)",
				"Cultivos Anuales (Cereales)",
				"Cultivo de Palma",
				"Soja en zonas de riesgo",
				"Ganadería intensiva",
				"Tecnología Agrícola (AgriTech)",
				"Silvicultura Sostenible",
			},
		},
		{
			ID:           "ENERGY_FOSSIL",
			Name:         "Energía: Combustibles Fósiles",
			CNAE:         "35",
			InherentRisk: 5,
			IsExcluded:   false,
			IsRestricted: true,
			Methodology:  "MARCO DE TRANSICIÓN ENERGÉTICA: Financiable solo si existen Planes de Transición creíbles (Capex alignment) hacia Net Zero 2050.",
			PolicyConfig: &model.SectorPolicyConfig{
				RevenueThreshold:       15,
				RequiresTransitionPlan: true,
				TaxonomyStatus:         model.TaxonomyTransitional,
				RestrictedActivities:   []string{"Generación Térmica (Carbón)", "Extracción Oil & Gas", "Infraestructura de Transporte Gas"},
				ExclusionReason:        "Supera el umbral del 15% de ingresos en actividades fósiles sin abatement.",
			},
			SubActivity: []string{
				"Generación Térmica (Carbón)",
				"Ciclo Combinado (Gas)",
				"Extracción Oil & Gas",
				"Infraestructura de Transporte Gas",
				"Integración de Renovables en Red",
				"Captura y Almacenamiento de Carbono (CCS)",
			},
		},
		{
			ID:           "MANUFACTURING",
			Name:         "Industria Manufacturera Pesada",
			CNAE:         "24",
			InherentRisk: 5,
			IsExcluded:   false,
			Methodology:  "MARCO GENERAL E&S: Foco en prevención de contaminación (IPPC) y auditorías de cadena de suministro (Tier 1 y Tier 2) para componentes críticos.",
			PolicyConfig: &model.SectorPolicyConfig{
				RevenueThreshold:       100,
				RequiresTransitionPlan: true,
				TaxonomyStatus:         model.TaxonomyTransitional,
				RestrictedActivities:   []string{"Siderurgia", "Cemento", "Química Básica"},
				ExclusionReason:        "Sector Hard-to-abate requiere plan de descarbonización obligatorio.",
			},
			SubActivity: []string{
				"Siderurgia",
				"Cemento",
				"Química Básica",
				"Fabricación de Maquinaria",
				"Industria Textil",
				"Automoción (Combustión Interna)",
				"Automoción (Vehículo Eléctrico)",
			},
		},
		{
			ID:           "SOFTWARE",
			Name:         "Desarrollo de Software / TIC",
			CNAE:         "62",
			InherentRisk: 2,
			IsExcluded:   false,
			Methodology:  "METODOLOGÍA TIC: Análisis centrado en eficiencia energética de Centros de Datos (PUE) y gestión de residuos electrónicos (RAEE).",
			PolicyConfig: &model.SectorPolicyConfig{
				RevenueThreshold:       100,
				RequiresTransitionPlan: false,
				TaxonomyStatus:         model.TaxonomyEnabling,
				RestrictedActivities:   []string{},
				ExclusionReason:        "",
			},
			SubActivity: []string{
				"Desarrollo SaaS B2B",
				"Data Centers / Cloud Infrastructure",
				"Consultoría IT",
				"Inteligencia Artificial",
				"Ciberseguridad",
			},
		},
		{
			ID:           "WEAPONS",
			Name:         "Fabricación de Armamento",
			CNAE:         "2540",
			InherentRisk: 5,
			IsExcluded:   true,
			Methodology:  "LISTA DE EXCLUSIÓN: Actividad prohibida según Estatutos de COFIDES y Tratados Internacionales (Convención de Ottawa).",
			PolicyConfig: &model.SectorPolicyConfig{
				RevenueThreshold:       0,
				RequiresTransitionPlan: false,
				TaxonomyStatus:         model.TaxonomyBrown,
				RestrictedActivities:   []string{"Armas nucleares", "Minas antipersona", "Municiones de racimo", "Armas convencionales"},
				ExclusionReason:        "Actividad excluida por Tratados Internacionales y Estatutos.",
			},
			SubActivity: []string{
				"Armas nucleares",
				"Minas antipersona",
				"Municiones de racimo",
				"Armas convencionales",
				"Tecnología de doble uso",
			},
		},
		{
			ID:           "GAMBLING",
			Name:         "Juegos de Azar y Apuestas",
			CNAE:         "9200",
			InherentRisk: 4,
			IsExcluded:   true,
			Methodology:  "LISTA DE EXCLUSIÓN: Actividad restringida por riesgo social severo y prevención de blanqueo de capitales.",
			PolicyConfig: &model.SectorPolicyConfig{
				RevenueThreshold:       5,
				RequiresTransitionPlan: false,
				TaxonomyStatus:         model.TaxonomyBrown,
				RestrictedActivities:   []string{"Casinos Online", "Casinos Físicos", "Loterías"},
				ExclusionReason:        "Exclusión por Riesgo Social Severo (Ludopatía) y AML.",
			},
			SubActivity: []string{
				"Casinos Online",
				"Casinos Físicos",
				"Loterías",
				"Apuestas Deportivas",
			},
		},
	}
}

func defaultCountries() []model.Country {
	return []model.Country{
		{Code: "ES", Name: "España", RiskScore: 1},
		{Code: "BR", Name: "Brasil", RiskScore: 3},
		{Code: "IN", Name: "India", RiskScore: 3},
		{Code: "CD", Name: "R.D. Congo", RiskScore: 5},
		{Code: "MX", Name: "México", RiskScore: 3},
	}
}

func defaultQuestions() []model.Question {
	all := []string{model.SectorAll}
	return []model.Question{
		{
			ID:              "ifc_ps1_esms",
			Text:            "¿Dispone la empresa de un Sistema de Gestión Ambiental y Social (SGAS) acorde a la norma ISO 14001 o equivalente?",
			Category:        "IFC_PS1_MANAGEMENT",
			CategoryLabel:   "IFC PS1: Gestión y Evaluación",
			RelevantSectors: all,
			RequiredForFund: []model.FundType{model.FundFIEXFonpyme, model.FundFIS},
			RiskFactor:      "Gestión Ambiental",
		},
		{
			ID:              "ifc_ps2_grievance",
			Text:            "¿Existe un Mecanismo de Quejas y Reclamos (Grievance Mechanism) accesible para todos los trabajadores, incluidos contratistas?",
			Category:        "IFC_PS2_LABOR",
			CategoryLabel:   "IFC PS2: Trabajo y Condiciones Laborales",
			RelevantSectors: all,
			RequiredForFund: []model.FundType{model.FundFIEXFonpyme, model.FundFIS},
			RiskFactor:      "Derechos Laborales",
		},
		{
			ID:              "ifc_ps2_supplychain",
			Text:            "¿Se realizan auditorías para verificar la ausencia de trabajo infantil o forzoso en la cadena de suministro primaria?",
			Category:        "IFC_PS2_LABOR",
			CategoryLabel:   "IFC PS2: Trabajo y Condiciones Laborales",
			RelevantSectors: []string{"MANUFACTURING", "AGRICULTURE"},
			RequiredForFund: []model.FundType{model.FundFIEXFonpyme, model.FundFIS},
			RiskFactor:      "Riesgo Cadena Suministro",
		},
		{
			ID:              "ifc_ps3_ghg",
			Text:            "¿Se cuantifican anualmente las emisiones de Gases de Efecto Invernadero (Alcance 1 y 2)?",
			Category:        "IFC_PS3_EFFICIENCY",
			CategoryLabel:   "IFC PS3: Eficiencia de Recursos",
			RelevantSectors: []string{"MANUFACTURING", "AGRICULTURE", "ENERGY_FOSSIL"},
			RequiredForFund: []model.FundType{model.FundFIEXFonpyme, model.FundFIS},
			RiskFactor:      "Huella de Carbono",
		},
		{
			ID:              "ifc_ps4_emergency",
			Text:            "¿Dispone de planes de respuesta ante emergencias que involucren a las comunidades locales afectadas?",
			Category:        "IFC_PS4_COMMUNITY",
			CategoryLabel:   "IFC PS4: Salud y Seguridad Comunitaria",
			RelevantSectors: []string{"MANUFACTURING", "AGRICULTURE", "ENERGY_FOSSIL"},
			RequiredForFund: []model.FundType{model.FundFIEXFonpyme, model.FundFIS},
			RiskFactor:      "Impacto Comunitario",
		},
		{
			ID:              "ifc_ps6_assessment",
			Text:            "¿Se ha realizado una evaluación para identificar hábitats críticos o especies protegidas en el área de influencia del proyecto?",
			Category:        "IFC_PS6_BIO",
			CategoryLabel:   "IFC PS6: Conservación de la Biodiversidad",
			RelevantSectors: []string{"AGRICULTURE", "ENERGY_FOSSIL"},
			RequiredForFund: []model.FundType{model.FundFIEXFonpyme, model.FundFIS},
			RiskFactor:      "Biodiversidad",
		},
		{
			ID:              "dnsh_adaptation_risk",
			Text:            "¿Se ha realizado un análisis de riesgos climáticos físicos (inundaciones, sequías, olas de calor) proyectado a 10-30 años (Apéndice A Taxonomía)?",
			Category:        "DNSH_CLIMATE_ADAPTATION",
			CategoryLabel:   "DNSH: Adaptación C. Climático",
			RelevantSectors: all,
			RequiredForFund: []model.FundType{model.FundFOCO},
			RiskFactor:      "Riesgo Climático Físico",
		},
		{
			ID:              "dnsh_water_management",
			Text:            "¿El proyecto cumple con la Directiva Marco del Agua y cuenta con permisos de vertido que aseguren el buen estado ecológico de las masas de agua?",
			Category:        "DNSH_WATER",
			CategoryLabel:   "DNSH: Recursos Hídricos",
			RelevantSectors: []string{"AGRICULTURE", "MANUFACTURING", "ENERGY_FOSSIL"},
			RequiredForFund: []model.FundType{model.FundFOCO},
			RiskFactor:      "Estrés Hídrico",
		},
		{
			ID:              "dnsh_circular_waste",
			Text:            "¿Existe un Plan de Gestión de Residuos que priorice la reutilización y reciclaje frente a la eliminación (Directiva Marco de Residuos)?",
			Category:        "DNSH_CIRCULAR",
			CategoryLabel:   "DNSH: Economía Circular",
			RelevantSectors: []string{"MANUFACTURING", "AGRICULTURE", "SOFTWARE", "ENERGY_FOSSIL"},
			RequiredForFund: []model.FundType{model.FundFOCO},
			RiskFactor:      "Gestión de Residuos",
		},
		{
			ID:              "dnsh_circular_durability",
			Text:            "¿Los equipos y servidores adquiridos cumplen con criterios de diseño ecológico (durabilidad y reparabilidad)?",
			Category:        "DNSH_CIRCULAR",
			CategoryLabel:   "DNSH: Economía Circular",
			RelevantSectors: []string{"SOFTWARE"},
			RequiredForFund: []model.FundType{model.FundFOCO},
			RiskFactor:      "Obsolescencia Tecnológica",
		},
		{
			ID:              "dnsh_pollution_chemicals",
			Text:            "¿El proyecto evita el uso de sustancias listadas en el Reglamento REACH o consideradas contaminantes orgánicos persistentes?",
			Category:        "DNSH_POLLUTION",
			CategoryLabel:   "DNSH: Prevención Contaminación",
			RelevantSectors: []string{"MANUFACTURING", "AGRICULTURE", "ENERGY_FOSSIL"},
			RequiredForFund: []model.FundType{model.FundFOCO},
			RiskFactor:      "Contaminación Química",
		},
		{
			ID:              "mss_human_rights",
			Text:            "¿Ha implementado la empresa procesos de Debida Diligencia en Derechos Humanos alineados con las Líneas Directrices de la OCDE?",
			Category:        "MSS_HUMAN_RIGHTS",
			CategoryLabel:   "Salvaguardas Mínimas: DD.HH.",
			RelevantSectors: all,
			RequiredForFund: []model.FundType{model.FundFOCO, model.FundFIEXFonpyme},
			RiskFactor:      "Compliance DDHH",
		},
		{
			ID:              "mss_corruption",
			Text:            "¿Cuenta con un Programa de Compliance Penal y políticas anticorrupción y antisoborno formalizadas?",
			Category:        "MSS_CORRUPTION",
			CategoryLabel:   "Salvaguardas Mínimas: Ética",
			RelevantSectors: all,
			RequiredForFund: []model.FundType{model.FundFOCO, model.FundFIEXFonpyme},
			RiskFactor:      "Riesgo Reputacional",
		},
		{
			ID:              "impact_intentionality",
			Text:            "¿El proyecto tiene como objetivo explícito resolver un reto social o ambiental definido en la Teoría del Cambio?",
			Category:        "IMPACT_INTENTIONALITY",
			CategoryLabel:   "Impacto: Intencionalidad",
			RelevantSectors: all,
			RequiredForFund: []model.FundType{model.FundFIS},
			RiskFactor:      "Greenwashing",
		},
		{
			ID:              "impact_kpis",
			Text:            "¿Se han definido KPIs de impacto (ej. nº de beneficiarios, tCO2 evitadas) con metas anuales?",
			Category:        "IMPACT_MEASUREMENT",
			CategoryLabel:   "Impacto: Medición",
			RelevantSectors: all,
			RequiredForFund: []model.FundType{model.FundFIS},
			RiskFactor:      "Medición de Impacto",
		},
	}
}

func defaultClauses() map[string]string {
	return map[string]string{
		"Gestión Ambiental":        "CLÁUSULA 8.1 (SGAS): El Prestatario deberá implementar y mantener un Sistema de Gestión Ambiental certificado (ISO 14001) durante toda la vida del préstamo.",
		"Derechos Laborales":       "CLÁUSULA IFC PS2: El Prestatario se compromete a mantener un mecanismo de quejas para trabajadores accesible y transparente, documentando todas las resoluciones.",
		"Riesgo Cadena Suministro": "CLÁUSULA AUDITORÍA PROVEEDORES: El Prestatario realizará due diligence anual de sus proveedores críticos para asegurar el cumplimiento de la prohibición de trabajo infantil y forzoso.",
		"Huella de Carbono":        "CLÁUSULA REPORTE GEI: El Prestatario entregará anualmente un informe de huella de carbono (Alcance 1 y 2) verificado por un tercero independiente antes del 31 de marzo.",
		"Biodiversidad":            "CLÁUSULA DE NO PÉRDIDA NETA: Cualquier impacto residual en la biodiversidad deberá ser compensado mediante un Plan de Restauración aprobado por COFIDES (IFC PS6).",
		"Riesgo Climático Físico":  "CLÁUSULA ADAPTACIÓN (DNSH): El Prestatario implementará las medidas de adaptación física identificadas en el análisis de riesgo climático antes de la Finalización Mecánica.",
		"Gestión de Residuos":      "CLÁUSULA ECONOMÍA CIRCULAR: El Prestatario deberá asegurar que al menos el 70% (en peso) de los residuos de construcción y demolición no peligrosos se preparan para su reutilización o reciclaje.",
		"Contaminación Química":    "CLÁUSULA SUSTANCIAS PELIGROSAS: Queda prohibido el uso de fondos para la compra o uso de sustancias sujetas a restricciones bajo el Anexo XVII del Reglamento REACH.",
		"Compliance DDHH":          "CLÁUSULA SALVAGUARDAS SOCIALES: El incumplimiento grave de las Líneas Directrices de la OCDE o los Principios Rectores de la ONU activará un evento de incumplimiento cruzado.",
		"Riesgo Reputacional":      "CLÁUSULA ANTICORRUPCIÓN: El Prestatario certifica tener implementado un modelo de prevención de delitos y políticas éticas que cubren a directivos y empleados.",
		"Medición de Impacto":      "CLÁUSULA AJUSTE DE MARGEN POR IMPACTO: El margen aplicable se reducirá en 5 pbs si se verifica el cumplimiento del 100% de los Objetivos de Impacto anuales establecidos en el Anexo C.",
		GeneralClauseKey:           "CLÁUSULA GENERAL E&S: El Prestatario deberá notificar a COFIDES cualquier Accidente Grave o Incidente Ambiental significativo en un plazo máximo de 72 horas.",
	}
}

func defaultDocuments() []model.DocumentRequirement {
	all := []string{model.SectorAll}
	allFunds := []string{"ALL"}
	return []model.DocumentRequirement{
		{
			ID:              "doc_einf",
			Title:           "Estado de Información No Financiera (EINF)",
			Description:     "Informe consolidado de sostenibilidad auditado. Requerido por Directiva CSRD para validar materialidad.",
			Level:           model.DocMandatory,
			Category:        "GOVERNANCE",
			RelevantSectors: all,
			RequiredForFund: allFunds,
		},
		{
			ID:              "doc_kyc_owners",
			Title:           "Acta de Titularidad Real",
			Description:     "Documento notarial identificando a los beneficiarios últimos (>25%).",
			Level:           model.DocMandatory,
			Category:        "GOVERNANCE",
			RelevantSectors: all,
			RequiredForFund: allFunds,
		},
		{
			ID:              "doc_materiality",
			Title:           "Matriz de Doble Materialidad",
			Description:     "Análisis de impactos (Inside-Out) y riesgos financieros (Outside-In) según estándares ESRS.",
			Level:           model.DocRecommended,
			Category:        "GOVERNANCE",
			RelevantSectors: all,
			RequiredForFund: allFunds,
		},
		{
			ID:              "doc_eia",
			Title:           "Evaluación de Impacto Ambiental (EIA)",
			Description:     "Resolución administrativa favorable o estudio de impacto ambiental completo.",
			Level:           model.DocMandatory,
			Category:        "ENVIRONMENTAL",
			RelevantSectors: []string{"MANUFACTURING", "AGRICULTURE", "WEAPONS", "ENERGY_FOSSIL"},
			RequiredForFund: allFunds,
		},
		{
			ID:              "doc_iso14001",
			Title:           "Certificación ISO 14001",
			Description:     "Certificado vigente del Sistema de Gestión Ambiental emitido por entidad acreditada.",
			Level:           model.DocRecommended,
			Category:        "ENVIRONMENTAL",
			RelevantSectors: all,
			RequiredForFund: []string{string(model.FundFIEXFonpyme), string(model.FundFOCO)},
		},
		{
			ID:              "doc_eudr",
			Title:           "Declaración de Diligencia Debida (EUDR)",
			Description:     "Geolocalización de parcelas y validación de libre deforestación para materias primas críticas.",
			Level:           model.DocMandatory,
			Category:        "ENVIRONMENTAL",
			RelevantSectors: []string{"AGRICULTURE"},
			RequiredForFund: allFunds,
		},
		{
			ID:              "doc_dns_report",
			Title:           "Informe de Alineamiento Taxonómico (DNSH)",
			Description:     "Memoria técnica justificando el cumplimiento de los criterios de selección técnica y DNSH.",
			Level:           model.DocMandatory,
			Category:        "ENVIRONMENTAL",
			RelevantSectors: all,
			RequiredForFund: []string{string(model.FundFOCO)},
		},
		{
			ID:              "doc_theory_change",
			Title:           "Teoría del Cambio",
			Description:     "Documento estratégico vinculando inputs, outputs, outcomes e impactos a largo plazo.",
			Level:           model.DocMandatory,
			Category:        "SOCIAL",
			RelevantSectors: all,
			RequiredForFund: []string{string(model.FundFIS)},
		},
	}
}

func defaultSocialChallenges() []string {
	return []string{
		"Inclusión Financiera y Microfinanzas",
		"Agricultura Regenerativa y Seguridad Alimentaria",
		"Acceso a Energía Limpia y Asequible",
		"Educación de Calidad y Empleabilidad Joven",
		"Salud, Bienestar y Silver Economy",
	}
}
