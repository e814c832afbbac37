package chat

// Canned impact blocks. Bullet lines keep their leading indentation.
const (
	virginiaEnvironmental = `In Virginia, particularly in the data center hub of Northern Virginia:
        • Power Usage: Data centers consume over 4.5 gigawatts of power annually
        • Water Impact: Cooling systems use millions of gallons daily
        • Green Initiatives: Some facilities are transitioning to renewable energy
        • Environmental Concerns: Habitat disruption and increased energy grid strain
        • Noise Pollution: Cooling systems create constant background noise for nearby residents`

	virginiaSocial = `Community impacts in Virginia's data center regions include:
        • Property Value Changes: Mixed effects on nearby residential areas
        • Job Creation: Over 45,000 direct and indirect jobs
        • Infrastructure Strain: Increased traffic and utility demands
        • Tax Revenue: Significant local tax benefits, but questions about fair distribution
        • Community Division: Debates over future development and environmental justice`

	phoenixEnvironmental = `Phoenix data center environmental analysis:
        • Water Scarcity: Critical concerns about water usage in desert climate
        • Heat Island Effect: Large facilities contribute to urban heating
        • Energy Grid: Heavy demand on local power infrastructure
        • Air Quality: Diesel generator emissions during peak usage
        • Land Use: Converting agricultural land to industrial use`

	phoenixSocial = `Social justice concerns in Phoenix include:
        • Water Rights: Competition with residential and agricultural needs
        • Environmental Justice: Facility placement often near disadvantaged communities
        • Economic Benefits: Questions about equitable distribution of tax revenue
        • Community Voice: Calls for greater involvement in planning decisions
        • Indigenous Rights: Impact on traditional lands and water resources`

	chicagoEnvironmental = `Chicago data center environmental impact:
        • Energy Consumption: High demand on regional power grid
        • Lake Michigan: Water usage impacts on Great Lakes ecosystem
        • Urban Heat: Contribution to city heat island effect
        • Air Quality: Emissions from backup power systems
        • Weather Resilience: Adaptation to extreme temperature variations`

	chicagoSocial = `Chicago's community response to data centers:
        • Urban Development: Integration with city planning initiatives
        • Job Training: Local workforce development programs
        • Community Benefits: Infrastructure improvements and public space projects
        • Noise Concerns: Residential areas affected by cooling systems
        • Economic Impact: Changes in neighborhood character and property values`
)
