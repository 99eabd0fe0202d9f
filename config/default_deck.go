package config

// Default page size, 16:9 widescreen.
const (
	DefaultPageWidthIn  = 13.333
	DefaultPageHeightIn = 7.5
)

// Default returns the built-in air quality report deck. Image references are
// relative to the "visualizations" directory.
func Default() *Config {
	return &Config{
		Title:      "Air Quality in America",
		Author:     "Air Quality Project",
		OutputPath: "Air_Quality_Analysis_Presentation.pptx",
		ImageDir:   "visualizations",
		Page:       PageConfig{WidthIn: DefaultPageWidthIn, HeightIn: DefaultPageHeightIn},
		Slides:     airQualitySlides(),
	}
}

func airQualitySlides() []SlideSpec {
	return []SlideSpec{
		{
			Kind:     KindTitle,
			Title:    "Air Quality in America",
			Subtitle: "A Comprehensive Analysis of 42 Years of Data (1980-2022)",
		},
		{
			Kind:  KindFindings,
			Title: "Executive Summary: Key Findings",
			Findings: []string{
				"📈 26% improvement in air quality from 1980 to 2022",
				"☀️ Summer months have the worst air quality (July peak: 57.5 AQI)",
				"🏭 Ozone is the dominant pollutant (54% of readings)",
				"📍 California cities consistently rank as worst for air quality",
				"🌍 Geography matters more than population size",
				"⚠️ Extreme events have decreased dramatically since the 1990s",
			},
		},
		{
			Kind:  KindContent,
			Title: "About the Dataset",
			Bullets: []string{
				"5 million+ air quality readings from EPA monitoring stations",
				"42 years of data spanning 1980 to 2022",
				"Coverage: 634 cities across 52 states/territories",
				"5 pollutants tracked: Ozone, PM2.5, PM10, NO2, CO",
				"Air Quality Index (AQI) used as primary metric",
				"AQI Categories: Good (0-50), Moderate (51-100), Unhealthy (101+)",
			},
		},
		{
			Kind:  KindContent,
			Title: "42 Years of Progress: Air Quality Improvement Over Time",
			Image: "viz1_timeseries.png",
			Bullets: []string{
				"Average AQI decreased from 54.6 to 40.6",
				"26% overall improvement in air quality",
				"Clear downward trend since 1990s",
				"Clean Air Act regulations showing impact",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "Decade-by-Decade Analysis: Consistent Improvement",
			Image: "viz3_decades.png",
			Bullets: []string{
				"1980s: Average AQI 53.4 (worst decade)",
				"1990s: AQI dropped to 46.8",
				"2000s: Slight increase to 48.0",
				"2010s: Significant drop to 43.1",
				"2020s: Best yet at 40.9 (23% better than 1980s)",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "Seasonal Patterns: Summer Has Worst Air Quality",
			Image: "viz2_seasonal.png",
			Bullets: []string{
				"July peak: 57.5 AQI (highest month)",
				"Winter months: Lowest AQI readings",
				"Ozone dominates in summer",
				"PM2.5 more prevalent in winter",
				"Temperature and sunlight drive patterns",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "Pollutant Overview: Ozone Dominates",
			Image: "viz8_pollutant_overview.png",
			Bullets: []string{
				"Ozone: 54% of all readings (most common)",
				"PM2.5: 25% of readings",
				"Ozone has highest average AQI (51.6)",
				"PM10 has extreme outliers (max: 20,646!)",
				"CO shows lowest average levels",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "Pollutant Seasonality: Different Pollutants Peak at Different Times",
			Image: "viz9_pollutant_seasonality.png",
			Bullets: []string{
				"Ozone surges dramatically in summer",
				"PM2.5 peaks in winter months",
				"NO2 relatively stable year-round",
				"PM10 shows spring peaks (dust seasons)",
				"Understanding seasonality helps planning",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "State Rankings: Who Has the Worst Air Quality?",
			Image: "viz4_state_heatmap.png",
			Bullets: []string{
				"District of Columbia leads (70.3 AQI)",
				"California second worst (63.8 AQI)",
				"Utah, Rhode Island, Maryland follow",
				"Mississippi has best air (46.4 AQI)",
				"Most states fall in 'Good' category",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "City Rankings: Best and Worst Cities in America",
			Image: "viz5_city_rankings.png",
			Bullets: []string{
				"TOP 10 WORST CITIES - All in California!",
				"Riverside #1 worst (124.9 AQI)",
				"Los Angeles, Bakersfield, Fresno follow",
				"TOP 10 BEST CITIES - Diverse locations",
				"Alma, MI cleanest (5.0 AQI)",
				"Clean cities found across many states",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "Regional Analysis: Geography Matters",
			Image: "viz6_regional_comparison.png",
			Bullets: []string{
				"Mountain West: Worst region (50.6 AQI)",
				"Great Plains: Best region (42.7 AQI)",
				"West Coast high due to PM10 (dust)",
				"Midwest/South: Ozone dominant",
				"Regional variations in pollutant types",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "Geographic Distribution: Mapping Air Quality Across the USA",
			Image: "viz7_geographic_scatter.png",
			Bullets: []string{
				"All 5 worst cities located in California",
				"Midwest shows consistently clean air",
				"East Coast: Moderate levels",
				"Pacific Northwest: Generally good",
				"Clear geographic clustering patterns",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "Surprising Finding: Population Has WEAK Effect on Air Quality",
			Image: "viz11_population_relationships.png",
			Bullets: []string{
				"Correlation r=0.20 (weak positive)",
				"Population density r=0.14 (even weaker!)",
				"Geography and climate matter more",
				"Worst cities are NOT always the biggest",
				"Riverside worse than NYC despite size",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindContent,
			Title: "Extreme Air Quality Events: A Success Story",
			Image: "viz10_extreme_events.png",
			Bullets: []string{
				"1988: Worst year with 5,029 extreme events",
				"Dramatic decline since the 1990s",
				"Ozone causes 56% of extreme events",
				"PM2.5 responsible for 38% of extremes",
				"2020s: Fewer than 500 events per year",
			},
			TwoColumn: true,
		},
		{
			Kind:  KindFindings,
			Title: "Conclusions & Future Recommendations",
			Findings: []string{
				"✅ Air quality regulations (Clean Air Act) are working",
				"🎯 Focus on California - consistently worst performer",
				"☀️ Summer interventions crucial (Ozone peaks)",
				"🏙️ City size alone doesn't predict air quality",
				"📊 Continue monitoring PM2.5 and Ozone as top concerns",
				"🔮 Data-driven decisions can further improve outcomes",
			},
		},
	}
}
